package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadcross/internal/platform/tui"
	"github.com/vovakirdan/roadcross/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
)

var (
	colorTitle  = color.New(color.FgGreen, color.Bold)
	colorHeader = color.New(color.FgHiBlack)
	colorBest   = color.New(color.FgYellow)
	colorInfo   = color.New(color.FgCyan)
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs recorded in the run history database.

The highscore file is printed as well, since it is the score the game
shows while playing.

Examples:
  roadcross scores
  roadcross scores --recent --limit 20
  roadcross scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the newest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fatal("no run history database (--db is empty)")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening run history: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fatal("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	if err := printRuns(store); err != nil {
		store.Close()
		fatal("%v", err)
	}
}

// printRuns writes the run table to stdout.
func printRuns(store *storage.Store) error {
	var (
		runs  []storage.RunEntry
		err   error
		title = "Top runs"
	)
	if flagRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	colorTitle.Printf("Road Cross - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'roadcross' to set the first score!")
		return nil
	}

	// Print header
	colorHeader.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Speed", "Cars", "Date")
	colorHeader.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range runs {
		line := fmt.Sprintf("  %-4d  %-12s  %-8d  %-6.2f  %-5d  %s",
			i+1, r.Player, r.Score, r.TopSpeed, r.CarsPassed, r.CreatedAt.Format("2006-01-02 15:04"))
		if r.NewHighscore {
			colorBest.Println(line + "  *")
		} else {
			fmt.Println(line)
		}
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		colorInfo.Printf("%d runs, best %d, average %.1f, %d cars passed\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalCars)
	}
	if hs, err := storage.NewHighscoreFile(flagHighscore); err == nil {
		colorInfo.Printf("Highscore (%s): %d\n", hs.Path(), hs.LoadHighscore())
	}
	return nil
}
