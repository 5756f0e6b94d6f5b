package main

import "time"

type Mode int

const (
	ModePlay Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSaveStroke FileOperation = iota
	FileOpSavePNG
	FileOpSaveVisualTXT
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

const (
	// Pixel size of one terminal cell. Cells are roughly twice as tall as
	// they are wide.
	cellWidth  = 8.0
	cellHeight = 16.0

	// Rows used by the score header and the status line.
	headerRows = 1
	statusRows = 1

	frameInterval = time.Second / 60
)
