// roadcross is an endless road-crossing arcade game for the terminal.
//
// Usage:
//
//	roadcross                - Play in the current terminal
//	roadcross serve          - Start SSH server for remote play
//	roadcross scores         - Show the run history
//	roadcross config         - Print the configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for the first run
//	--config <path>     - Use a custom config YAML
//	--highscore <path>  - Set highscore file (default: data.json)
//	--db <path>         - Set run history database (default: ~/.roadcross/runs.db)
//	--assets <dir>      - Load sprites from a directory
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/assets"
	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/platform/tui"
	"github.com/vovakirdan/roadcross/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagHighscore string
	flagDBPath    string
	flagAssets    string
	flagLogFile   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadcross",
	Short: "Road Cross - dodge the traffic in your terminal",
	Long: `Road Cross is an endless arcade game: steer across a scrolling road
and dodge the oncoming cars. Every car you pass adds to your score and
makes the traffic a little faster.

Controls:
  A/Left     - Steer left
  D/Right    - Steer right
  Ctrl+S     - Save a screenshot
  Q/Esc      - Quit

Available commands:
  serve    - Start SSH server for remote play
  scores   - View the run history
  config   - Print the configuration

Examples:
  roadcross
  roadcross --seed 42 --highscore ~/.roadcross/data.json
  roadcross serve --ssh :2222
  roadcross scores --recent`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the first run (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighscore, "highscore", "data.json", "Path to highscore file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadcross/runs.db", "Path to run history database (empty = disabled)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with player.txt, car.txt and road.txt")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns the logger for interactive play. The alternate screen
// owns the terminal, so logs go to --log-file or nowhere.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadcross",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// loadDeps loads the config, sprites and highscore file shared by the play
// and serve commands. Any failure here is fatal.
func loadDeps() (tui.Deps, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.Deps{}, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}

	a, err := assets.Load(flagAssets, cfg)
	if err != nil {
		return tui.Deps{}, err
	}

	hs, err := storage.NewHighscoreFile(flagHighscore)
	if err != nil {
		return tui.Deps{}, err
	}

	return tui.Deps{Config: cfg, Assets: a, Highscores: hs}, nil
}
