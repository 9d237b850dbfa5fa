package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresLimit int
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best and latest runs",
	Long: `Browse recorded runs. Tab switches between the best and the most
recent runs. With --plain the high score table is printed instead.

Examples:
  jumper scores
  jumper scores --plain --limit 5
  jumper scores --run 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  jumper scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Rows printed with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores and runs")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the details of one run by ID")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("All scores and runs deleted.")
		return nil
	case flagScoresRun != "":
		return printRun(os.Stdout, store, flagScoresRun)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if !flagScoresPlain && interactive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, "Sky Jumper", width, height)
	}
	return printTopScores(os.Stdout, store, flagScoresLimit)
}

// printTopScores writes the high score table and the run statistics.
func printTopScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High scores - Sky Jumper")
	fmt.Fprintln(w)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'jumper play' to set the first record!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %s\n", "Rank", "Metres", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %s\n", "----", "------", "----")
	for i, s := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %s\n", i+1, s.Score, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Best: %d m  Average: %.1f m  Hardest: Lv %.2f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.MaxDifficulty)
	}
	return nil
}

// printRun writes the details of one recorded run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.Run(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Fprintf(w, "Run        %s\n", run.RunID)
	fmt.Fprintf(w, "Played     %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Distance   %d m\n", run.Score)
	fmt.Fprintf(w, "Survived   %s (%d ticks)\n", formatTicks(run.Ticks), run.Ticks)
	fmt.Fprintf(w, "Hardest    Lv %.2f\n", run.MaxDifficulty)
	fmt.Fprintf(w, "Platforms  %d\n", run.Platforms)
	fmt.Fprintf(w, "Replay     jumper play --seed %d\n", run.Seed)
	return nil
}

// formatTicks renders a tick count at 60 ticks per second as m:ss.
func formatTicks(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
