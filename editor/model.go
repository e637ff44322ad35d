package editor

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// statusRows is the status bar plus the message bar below the text area.
const statusRows = 2

const tickInterval = time.Second

type tickMsg time.Time

// Model is a Bubble Tea component wrapping a Session.
//
// Model is a value type; copies share the underlying Session. The composed
// frame is already windowed by the Session's Viewport; the bubbles viewport
// only sizes it to the text area.
type Model struct {
	cfg Config
	s   *Session

	viewport viewport.Model

	width, height int
	quitting      bool
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	return Model{cfg: cfg, s: NewSession(cfg), viewport: viewport.New(0, 0)}
}

func (m Model) Session() *Session { return m.s }

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// Init starts the tick that lets expired messages disappear without input.
func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// SetSize sets the full component size. The bottom two rows hold the
// status and message bars.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-statusRows, 0)
	m.s.SetSize(m.viewport.Width, m.viewport.Height)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		for _, k := range m.cfg.KeyMap.Translate(msg) {
			switch m.s.HandleKey(k) {
			case ActionSave:
				if err := m.s.Save(); err != nil {
					slog.Error("editor: save failed", "file", m.s.Filename(), "err", err)
				}
			case ActionQuit:
				m.quitting = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}
