package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// setupLogging returns the application logger. The terminal belongs to the
// TUI, so logs go to path when debug is set and are discarded otherwise.
func setupLogging(debug bool, path string) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	// route package-level log calls (config) to the same file
	log.SetOutput(f)
	return logger, func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
