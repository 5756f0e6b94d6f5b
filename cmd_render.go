package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"circle/internal/game"
	"circle/internal/render"
	"circle/internal/strokefile"
)

var (
	renderOutput  string
	renderWidth   int
	renderHeight  int
	renderNoLabel bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Replay a saved stroke and render the board as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output PNG `file` (default: input name with .png)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 400, "board width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 400, "board height in pixels")
	renderCmd.Flags().BoolVar(&renderNoLabel, "no-label", false, "leave the score out of the image")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := renderOutput
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}

	opts := game.Options{ShowGuide: !noGuide}
	out, err := renderFile(input, output, renderWidth, renderHeight, opts, !renderNoLabel)
	if err != nil {
		return err
	}

	if out.Scored {
		fmt.Fprintf(cmd.OutOrStdout(), "Score: %d%%\n", out.Result.Score)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Stroke too short to score; rendered as drawn")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered to %s\n", absOrSame(output))
	return nil
}

// renderFile replays the stroke in input on a board of the given size and
// writes the result to output.
func renderFile(input, output string, width, height int, opts game.Options, label bool) (game.Outcome, error) {
	if width <= 0 || height <= 0 {
		return game.Outcome{}, fmt.Errorf("invalid size %dx%d", width, height)
	}
	points, err := strokefile.Load(input)
	if err != nil {
		return game.Outcome{}, err
	}

	g := game.New(float64(width), float64(height), opts)
	out := game.Replay(g, points)
	if err := render.SavePNG(output, g, label); err != nil {
		return game.Outcome{}, err
	}
	return out, nil
}
