// Command mazebfs is the interactive BFS maze explorer.
//
// Settings come from the environment (MAZE_* keys, optionally from a .env
// file) and may be overridden by flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazebfs/config"
	"github.com/katalvlaran/mazebfs/tui"
)

var (
	delayFlag  = flag.Duration("delay", 0, "Show-all-paths step delay (overrides MAZE_STEP_DELAY)")
	debugFlag  = flag.Bool("debug", false, "Write logs to the debug log file")
	layoutFlag = flag.String("layout", "", "Maze layout file (overrides MAZE_LAYOUT_FILE)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebfs: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	logger, closeLog, err := setupLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebfs: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	g, err := cfg.Grid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebfs: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Runs after the deferred Fini below, so the terminal is restored first
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nmazebfs crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	app, err := tui.NewApp(screen, g, cfg.StepDelay, logger)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "mazebfs: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("[APP] [INFO] session %s started on %dx%d maze", app.Explorer().ID(), g.Rows(), g.Cols())
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Printf("[APP] [ERROR] %v", err)
	}
	logger.Printf("[APP] [INFO] session %s finished", app.Explorer().ID())
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "delay":
			cfg.StepDelay = *delayFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "layout":
			cfg.LayoutFile = *layoutFlag
		}
	})
}
