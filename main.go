package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"circle/internal/game"
)

var (
	logPath   string
	logDebug  bool
	noGuide   bool
	noAnimate bool

	logFile io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "circle",
	Short: "Draw a circle in your terminal and see how round it is",
	Long: `circle is a terminal drawing game. Trace a circle with the mouse and get
live color feedback while you draw and a score from 0 to 100 when you let go.

Saved strokes can be scored and rendered again with the score and render
commands.`,
	Version:            versionString(),
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	RunE:               runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the drawing game (default)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to `file`")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "include debug messages in the log")
	rootCmd.PersistentFlags().BoolVar(&noGuide, "no-guide", false, "hide the guide circle")
	rootCmd.PersistentFlags().BoolVar(&noAnimate, "no-animate", false, "skip the completion animation")
	rootCmd.AddCommand(playCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if logPath == "" {
		return nil
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = file

	level := slog.LevelInfo
	if logDebug {
		level = slog.LevelDebug
	}
	game.SetLogger(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})))
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logFile == nil {
		return nil
	}
	game.SetLogger(nil)
	err := logFile.Close()
	logFile = nil
	return err
}

// applyFlags overrides config values with command line flags.
func applyFlags(config *Config) *Config {
	if noGuide {
		config.ShowGuide = false
	}
	if noAnimate {
		config.Animate = false
	}
	return config
}

func runPlay(cmd *cobra.Command, args []string) error {
	config := applyFlags(loadConfig())

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
