package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"circle/internal/game"
	"circle/internal/scoring"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

func initialModel(config *Config) model {
	canvas := NewCanvas(80, 22)
	w, h := canvas.PixelSize()
	opts := game.Options{ShowGuide: config.ShowGuide, Animate: config.Animate}

	return model{
		game:   game.New(w, h, opts),
		canvas: canvas,
		mode:   ModePlay,
		config: config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func sweepFrame(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return sweepFrameMsg{gen: gen}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeCanvas()
		return m, nil

	case sweepFrameMsg:
		if msg.gen != m.sweepGen {
			return m, nil
		}
		if m.game.Tick() {
			return m, sweepFrame(msg.gen)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}

		switch m.mode {
		case ModePlay:
			return m.handlePlayKey(msg)
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		}
	}
	return m, nil
}

func (m *model) resizeCanvas() {
	rows := m.height - headerRows - statusRows
	m.canvas.Resize(m.width, rows)
	m.game.Resize(m.canvas.PixelSize())
}

// canvasPoint maps a terminal cell to a board pixel. ok is false when the
// cell is outside the board.
func (m *model) canvasPoint(x, y int) (scoring.Point, bool) {
	p := m.canvas.PointAt(x, y-headerRows)
	_, _, ok := m.canvas.CellAt(p)
	return p, ok
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModePlay || m.help {
		return m, nil
	}
	p, inside := m.canvasPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		m.game.Handle(game.Event{Kind: game.EventStart, Point: p})
		return m, nil

	case tea.MouseActionMotion:
		if !m.game.Drawing() {
			return m, nil
		}
		if !inside {
			// Leaving the board ends the stroke like a release.
			return m.finishStroke()
		}
		m.game.Handle(game.Event{Kind: game.EventMove, Point: p})
		return m, nil

	case tea.MouseActionRelease:
		return m.finishStroke()
	}
	return m, nil
}

func (m model) finishStroke() (tea.Model, tea.Cmd) {
	if !m.game.Drawing() {
		return m, nil
	}
	out := m.game.Handle(game.Event{Kind: game.EventEnd})
	if !out.Scored {
		m.errorMessage = fmt.Sprintf("Too short to score: %d points, need %d", m.game.Stroke().Len(), scoring.MinScorePoints)
		return m, nil
	}

	if out.NewBest && m.game.Session().Strokes() > 1 {
		m.successMessage = "New best!"
	}
	m.sweepGen++
	if m.game.Sweep() != nil {
		return m, sweepFrame(m.sweepGen)
	}
	return m, nil
}

func (m model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.game.Drawing() {
			next, _ := m.finishStroke()
			m = next.(model)
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "g":
		if m.game.ToggleGuide() {
			m.successMessage = "Guide shown"
		} else {
			m.successMessage = "Guide hidden"
		}
		m.errorMessage = ""
	case "s", "p", "t":
		if m.game.Drawing() {
			return m, nil
		}
		if m.game.Stroke().Len() == 0 {
			m.errorMessage = "Nothing drawn yet"
			return m, nil
		}
		m.mode = ModeFileInput
		switch msg.String() {
		case "s":
			m.fileOp = FileOpSaveStroke
		case "p":
			m.fileOp = FileOpSavePNG
		case "t":
			m.fileOp = FileOpSaveVisualTXT
		}
		m.filename = fileOpDefault(m.fileOp)
		m.errorMessage = ""
		m.successMessage = ""
	case "y":
		if err := m.copyScore(); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %s", err.Error())
			m.successMessage = ""
		} else {
			m.successMessage = "Score copied to clipboard"
			m.errorMessage = ""
		}
	case "esc":
		m.errorMessage = ""
		m.successMessage = ""
	}
	return m, nil
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModePlay
		m.filename = ""
		m.errorMessage = ""
		return m, nil
	case tea.KeyEnter:
		if strings.TrimSpace(m.filename) == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		path := m.config.GetSavePath(withExtension(m.filename, fileOpExtension(m.fileOp)))
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			m.filename = path
			return m, nil
		}
		return m.writeFile(path)
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
		return m, nil
	default:
		// Only single characters go into the name, not keys like "shift+left"
		keyStr := msg.String()
		if len(keyStr) == 1 {
			m.filename += keyStr
		}
		return m, nil
	}
}

func (m model) writeFile(path string) (tea.Model, tea.Cmd) {
	if err := m.runFileOp(path); err != nil {
		m.mode = ModeFileInput
		m.errorMessage = fmt.Sprintf("%s failed: %s", fileOpName(m.fileOp), err.Error())
		return m, nil
	}
	m.mode = ModePlay
	m.filename = ""
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Saved to %s", absOrSame(path))
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			return m.writeFile(m.filename)
		}
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
			m.filename = fileOpDefault(m.fileOp)
		} else {
			m.mode = ModePlay
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.headerView())
	result.WriteString("\n")

	m.game.Draw(m.canvas)
	result.WriteString(strings.Join(m.canvas.Render(), "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusView())

	return result.String()
}

func (m model) headerView() string {
	parts := []string{titleStyle.Render("Draw a Circle")}

	if m.game.Drawing() {
		band := scoring.BandFor(m.game.Live())
		parts = append(parts, bandStyle(band).Render(fmt.Sprintf("Live: %s", band)))
	} else if res, ok := m.game.Result(); ok {
		band := scoring.BandForScore(res.Score)
		parts = append(parts, "Score: "+bandStyle(band).Render(fmt.Sprintf("%d%%", res.Score)))
	} else if last, ok := m.game.Session().Last(); ok {
		parts = append(parts, "Score: "+bandStyle(scoring.BandForScore(last)).Render(fmt.Sprintf("%d%%", last)))
	}

	if best, ok := m.game.Session().Best(); ok {
		parts = append(parts, bestStyle.Render(fmt.Sprintf("Best: %d%%", best)))
	}
	return strings.Join(parts, "  ")
}

func bandStyle(b scoring.Band) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(terminalColor(b.Color()))
}

func (m model) statusView() string {
	var statusLine string
	switch m.mode {
	case ModeFileInput:
		statusLine = fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", fileOpName(m.fileOp), m.filename)
		if m.errorMessage != "" {
			statusLine = fmt.Sprintf("Mode: FILE | %s | %s filename: %s█ | Enter=retry, Esc=cancel",
				errorStyle.Render("ERROR: "+m.errorMessage), fileOpName(m.fileOp), m.filename)
		}
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		statusLine = fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		status := "Mode: PLAY"
		if m.game.Drawing() {
			status += fmt.Sprintf(" | Points: %d", m.game.Stroke().Len())
		}
		if m.successMessage != "" {
			status += fmt.Sprintf(" | %s", m.successMessage)
		}
		if m.errorMessage != "" {
			status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
		} else if m.successMessage == "" {
			status += dimStyle.Render(" | drag to draw | g guide | ? for help | q to quit")
		}
		statusLine = status
	}
	return statusLine
}

func (m model) helpView() string {
	helpLines := []string{
		"Draw a Circle Help",
		"==================",
		"",
		"Drawing:",
		"--------",
		"  Press the left mouse button and drag to trace a circle.",
		"  Release (or leave the board) to finish and get a score.",
		"  Segments are colored while you draw: green is round,",
		"  yellow is wobbly, red needs improvement.",
		"  With the guide on, a dotted line from the guide center shows",
		"  how far you are from the guide radius.",
		fmt.Sprintf("  Strokes shorter than %d samples are not scored.", scoring.MinScorePoints),
		"",
		"Scoring:",
		"--------",
		"  60% how evenly the stroke keeps its distance from its center",
		"  20% how closely the end returns to the start",
		"  20% how smoothly the direction changes",
		"",
		"Keys:",
		"-----",
		"  g                Show/hide the guide circle",
		"  s                Save the stroke as a points file (.txt)",
		"  p                Export the board as PNG",
		"  t                Export the board as plain text",
		"  y                Copy the score to the clipboard",
		"  Esc              Clear messages",
		"  ?                Toggle this help",
		"  q                Quit",
		"",
		"Press ? or Esc to close",
	}

	height := m.height
	if height < 1 {
		height = len(helpLines)
	}
	if len(helpLines) > height {
		helpLines = helpLines[:height]
	}
	return strings.Join(helpLines, "\n")
}
