package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"circle/internal/game"
	"circle/internal/scoring"
	"circle/internal/strokefile"
	"circle/internal/watcher"
)

var watchStroke bool

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a stroke saved as a points file",
	Long: `Score a stroke stored one point per line as "x,y" and print the score with
its circularity, closure and smoothness components.

With --watch the file is scored again every time it changes and the best
score of the run is tracked.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVarP(&watchStroke, "watch", "w", false, "score again whenever the file changes")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()
	var session game.Session

	err := scoreFile(out, filename, &session)
	if !watchStroke {
		return err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var mu sync.Mutex
	fw, err := watcher.New(filename, 200*time.Millisecond, func(path string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out)
		if err := scoreFile(out, path, &session); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	defer fw.Close()
	fw.SetLogger(game.Logger())

	fmt.Fprintf(out, "\nWatching %s for changes (Ctrl+C to stop)\n", filename)
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// scoreFile scores the stroke in filename, records it in session and
// prints a report to w.
func scoreFile(w io.Writer, filename string, session *game.Session) error {
	points, err := strokefile.Load(filename)
	if err != nil {
		return err
	}

	res, ok := scoring.Finalize(points)
	if !ok {
		return fmt.Errorf("%s: %d points, need at least %d to score", filename, len(points), scoring.MinScorePoints)
	}
	best := session.Record(res.Score)
	game.Logger().Info("file scored", "file", filename, "score", res.Score, "best", best)

	fmt.Fprintln(w, "Circle Score")
	fmt.Fprintln(w, "============")
	fmt.Fprintf(w, "File: %s\n", filename)
	fmt.Fprintf(w, "Points: %d\n\n", len(points))

	fmt.Fprintf(w, "Score: %d%% (%s)\n", res.Score, scoring.BandForScore(res.Score))
	if session.Strokes() > 1 {
		fmt.Fprintf(w, "Best: %d%%\n", best)
	}

	if res.Degenerate {
		fmt.Fprintln(w, "\nAll points coincide; there is no circle to measure.")
		return nil
	}

	fmt.Fprintln(w, "\nComponents:")
	fmt.Fprintf(w, "  Circularity: %7.2f  (x0.6)\n", res.Circularity)
	fmt.Fprintf(w, "  Closure:     %7.2f  (x20)\n", res.Closure)
	fmt.Fprintf(w, "  Smoothness:  %7.2f  (x0.2)\n", res.Smoothness)

	fmt.Fprintln(w, "\nFitted circle:")
	fmt.Fprintf(w, "  Center: (%.2f, %.2f)\n", res.Center.X, res.Center.Y)
	fmt.Fprintf(w, "  Radius: %.2f\n", res.AvgRadius)
	return nil
}
