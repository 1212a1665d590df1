// Package scoring rates a finished run by comparing the player's step count
// with path-length baselines derived from the true shortest path.
//
// The baselines follow a fixed policy rather than measured statistics:
//
//	Best    = shortest path length (edges)
//	Average = Best + AverageOffset
//	Worst   = Best + WorstOffset
//
// Best may later be tightened downward; Average and Worst keep the values
// they were created with, so Best ≤ Average ≤ Worst always holds.
package scoring

import "fmt"

// Baseline offsets from the shortest path length.
const (
	AverageOffset = 8
	WorstOffset   = 16
)

// Rating is the efficiency tier of a completed run.
type Rating uint8

const (
	// Unrated means the run has not completed.
	Unrated Rating = iota
	Perfect
	Good
	Average
	Poor
)

// String returns the display name of r; Unrated renders as "-".
func (r Rating) String() string {
	switch r {
	case Perfect:
		return "Perfect"
	case Good:
		return "Good"
	case Average:
		return "Average"
	case Poor:
		return "Poor"
	default:
		return "-"
	}
}

// Baselines holds the three reference path lengths.
type Baselines struct {
	Best, Average, Worst int
}

// NewBaselines derives Average and Worst from best using the fixed offsets.
func NewBaselines(best int) Baselines {
	return Baselines{
		Best:    best,
		Average: best + AverageOffset,
		Worst:   best + WorstOffset,
	}
}

// Tighten lowers Best to length when length is strictly smaller and
// non-negative. It reports whether Best changed.
func (b *Baselines) Tighten(length int) bool {
	if length < 0 || length >= b.Best {
		return false
	}
	b.Best = length
	return true
}

// Rate returns the tier for a run of steps moves:
// Perfect ≤ Best < Good ≤ Average < Average-tier ≤ Worst < Poor.
func Rate(steps int, b Baselines) Rating {
	switch {
	case steps <= b.Best:
		return Perfect
	case steps <= b.Average:
		return Good
	case steps <= b.Worst:
		return Average
	default:
		return Poor
	}
}

// Result is the payload reported when a player reaches the end.
type Result struct {
	Steps  int
	Rating Rating
	Best   int
}

// NewResult rates steps against b.
func NewResult(steps int, b Baselines) Result {
	return Result{Steps: steps, Rating: Rate(steps, b), Best: b.Best}
}

// Message returns the completion text shown to the player.
func (r Result) Message() string {
	switch r.Rating {
	case Perfect:
		return fmt.Sprintf("Perfect! You found the shortest path in %d steps!", r.Steps)
	case Good:
		return fmt.Sprintf("Good! You completed in %d steps. Best is %d.", r.Steps, r.Best)
	case Average:
		return fmt.Sprintf("Average performance. You took %d steps. Try to find a shorter path!", r.Steps)
	default:
		return fmt.Sprintf("You took %d steps. The optimal path is only %d steps.", r.Steps, r.Best)
	}
}
