package main

import "circle/internal/game"

type model struct {
	width          int
	height         int
	game           *game.Game
	canvas         *Canvas
	mode           Mode
	help           bool
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
	config         *Config
	sweepGen       int
}

// sweepFrameMsg advances the completion sweep. Frames from an earlier score
// carry a stale gen and are dropped.
type sweepFrameMsg struct {
	gen int
}
