package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/platform/tui"
	"github.com/vovakirdan/roadcross/internal/storage"
)

func runPlay(_ *cobra.Command, _ []string) {
	deps, err := loadDeps()
	if err != nil {
		fatal("%v", err)
	}

	logger, logFile, err := newLogger()
	if err != nil {
		fatal("%v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	deps.Logger = logger

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: deps.Config.Display.FPS,
		Seed:     flagSeed,
	}

	// Open run history
	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run history", "error", err)
			// Continue without history - game still works
			store = nil
		} else {
			deps.History = store
		}
	}

	logger.Info("starting", "cols", width, "rows", height, "highscore_file", flagHighscore)
	runErr := tui.Run(deps, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		if logFile != nil {
			logFile.Close()
		}
		fatal("%v", runErr)
	}
}
