// Package config loads runtime settings for the mazebfs command from the
// environment, optionally seeded from a .env file.
package config

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazebfs/grid"
)

// Environment keys.
const (
	EnvStepDelay  = "MAZE_STEP_DELAY"
	EnvDebug      = "MAZE_DEBUG"
	EnvLogFile    = "MAZE_LOG_FILE"
	EnvLayoutFile = "MAZE_LAYOUT_FILE"
)

// Defaults applied when a key is unset.
const (
	DefaultStepDelay = 100 * time.Millisecond
	DefaultLogFile   = "mazebfs.log"
)

// Config holds the application's configuration values.
type Config struct {
	StepDelay  time.Duration // Pause between frames of the show-all-paths animation
	Debug      bool          // Write diagnostic logs to LogFile
	LogFile    string        // Path of the debug log
	LayoutFile string        // Optional text maze replacing grid.DefaultLayout
}

// Load reads an optional .env file from the working directory (or the given
// files), then builds a Config from the environment. A missing .env is not
// an error; a malformed value is.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}

	delay, err := getEnvAsDuration(EnvStepDelay, DefaultStepDelay)
	if err != nil {
		return Config{}, err
	}
	debug, err := getEnvAsBool(EnvDebug, false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		StepDelay:  delay,
		Debug:      debug,
		LogFile:    getEnvWithDefault(EnvLogFile, DefaultLogFile),
		LayoutFile: getEnvWithDefault(EnvLayoutFile, ""),
	}, nil
}

// Grid returns the maze to play: LayoutFile when set, grid.Default otherwise.
func (c Config) Grid() (*grid.Grid, error) {
	if c.LayoutFile == "" {
		return grid.Default(), nil
	}
	f, err := os.Open(c.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("config: open layout: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: read layout: %w", err)
	}
	g, err := grid.ParseLayout(lines)
	if err != nil {
		return nil, fmt.Errorf("config: layout %s: %w", c.LayoutFile, err)
	}
	return g, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses key with time.ParseDuration.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative: %s", key, value)
	}
	return d, nil
}

// getEnvAsBool parses key with strconv.ParseBool.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return b, nil
}
