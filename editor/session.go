package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/search"
	"github.com/iw2rmb/scribe/syntax"
)

// Action is a request a key leaves for the host.
type Action uint8

const (
	ActionNone Action = iota
	ActionSave
	ActionQuit
)

type mode uint8

const (
	modeEdit mode = iota
	modeSearch
	modeSaveAs
)

const (
	searchPrompt = "Search: %s (Use ESC/Arrows/Enter)"
	saveAsPrompt = "Save as: %s (ESC to cancel)"
)

var ErrNoSaver = errors.New("editor: no saver configured")

// Session is the editor state driven by one key loop: document, cursor,
// viewport, search and the status message. It is not safe for concurrent use.
type Session struct {
	cfg Config

	doc    *buffer.Document
	cursor buffer.Pos
	rx     int
	view   Viewport

	// Text area size in cells, gutter included.
	width, height int

	search *search.Searcher
	mode   mode
	input  []rune

	// Cursor and offsets restored when search is cancelled.
	savedCursor buffer.Pos
	savedView   Viewport

	status     string
	statusTime time.Time

	quitRemaining int
}

func NewSession(cfg Config) *Session {
	cfg = cfg.normalized()
	doc := buffer.New(buffer.Options{TabWidth: cfg.TabWidth, Rules: cfg.Rules})
	doc.Load(cfg.Lines)

	s := &Session{
		cfg:           cfg,
		doc:           doc,
		search:        search.New(doc),
		quitRemaining: cfg.QuitTimes,
	}
	s.SetStatus("%s", helpLine(cfg.KeyMap))
	s.scroll()
	return s
}

func helpLine(km KeyMap) string {
	parts := make([]string, 0, 3)
	for _, b := range km.Help() {
		h := b.Help()
		parts = append(parts, h.Key+" = "+h.Desc)
	}
	return "HELP: " + strings.Join(parts, " | ")
}

func (s *Session) Document() *buffer.Document { return s.doc }

func (s *Session) Cursor() buffer.Pos { return s.cursor }

func (s *Session) Viewport() Viewport { return s.view }

func (s *Session) Filename() string { return s.cfg.Filename }

// FileType is the status bar language label.
func (s *Session) FileType() string { return syntax.FileType(s.doc.Rules(), s.cfg.Filename) }

// Prompting reports whether keys currently edit a prompt instead of the
// document.
func (s *Session) Prompting() bool { return s.mode != modeEdit }

// Searching reports whether the search prompt is open.
func (s *Session) Searching() bool { return s.mode == modeSearch }

// SetSize sets the text area size, gutter included.
func (s *Session) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.scroll()
}

// SetStatus sets the message bar text and restarts its expiry.
func (s *Session) SetStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
	s.statusTime = s.cfg.Clock()
}

// Status returns the message bar text if it is younger than the configured
// timeout at now.
func (s *Session) Status(now time.Time) string {
	if s.status == "" || now.Sub(s.statusTime) >= s.cfg.MessageTimeout {
		return ""
	}
	return s.status
}

// Message is Status at the session clock.
func (s *Session) Message() string { return s.Status(s.cfg.Clock()) }

// HandleKey applies one key and keeps the cursor visible.
func (s *Session) HandleKey(k Key) Action {
	if s.mode != modeEdit {
		act := s.handlePromptKey(k)
		s.scroll()
		return act
	}

	before := s.doc.Dirty()
	act := s.dispatch(k)
	if !(k.Kind == KeyCtrl && k.Rune == 'q') {
		s.quitRemaining = s.cfg.QuitTimes
	}
	s.scroll()

	if s.doc.Dirty() != before && s.cfg.OnChange != nil {
		s.cfg.OnChange(s.buildChangeEvent(k))
	}
	return act
}

func (s *Session) dispatch(k Key) Action {
	switch k.Kind {
	case KeyRune:
		s.insertChar(k.Rune)
	case KeyEnter:
		s.insertNewline()
	case KeyBackspace:
		s.deleteBackward()
	case KeyDelete:
		s.moveCursor(buffer.DirRight)
		s.deleteBackward()
	case KeyLeft:
		s.moveCursor(buffer.DirLeft)
	case KeyRight:
		s.moveCursor(buffer.DirRight)
	case KeyUp:
		s.moveCursor(buffer.DirUp)
	case KeyDown:
		s.moveCursor(buffer.DirDown)
	case KeyHome:
		s.moveCursor(buffer.DirHome)
	case KeyEnd:
		s.moveCursor(buffer.DirEnd)
	case KeyPageUp:
		s.pageUp()
	case KeyPageDown:
		s.pageDown()
	case KeyCtrl:
		return s.dispatchCtrl(k.Rune)
	}
	return ActionNone
}

func (s *Session) dispatchCtrl(letter rune) Action {
	switch letter {
	case 'f':
		s.startSearch()
	case 'h':
		s.deleteBackward()
	case 's':
		if s.cfg.Filename == "" {
			s.startPrompt(modeSaveAs)
			return ActionNone
		}
		return ActionSave
	case 'q':
		if s.doc.Dirty() > 0 && s.quitRemaining > 0 {
			s.SetStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", s.quitRemaining)
			s.quitRemaining--
			return ActionNone
		}
		return ActionQuit
	}
	return ActionNone
}

func (s *Session) moveCursor(dir buffer.MoveDir) {
	s.cursor = s.doc.Move(s.cursor, dir)
}

func (s *Session) insertChar(r rune) {
	if s.cursor.Row == s.doc.RowCount() {
		s.doc.InsertRow(s.doc.RowCount(), "")
	}
	s.doc.InsertChar(s.cursor.Row, s.cursor.Col, r)
	s.cursor.Col++
}

func (s *Session) insertNewline() {
	if s.cursor.Col == 0 {
		s.doc.InsertRow(s.cursor.Row, "")
	} else {
		s.doc.SplitRow(s.cursor.Row, s.cursor.Col)
	}
	s.cursor.Row++
	s.cursor.Col = 0
}

func (s *Session) deleteBackward() {
	if s.cursor.Row >= s.doc.RowCount() {
		return
	}
	if s.cursor.Row == 0 && s.cursor.Col == 0 {
		return
	}
	if s.cursor.Col > 0 {
		s.doc.DeleteChar(s.cursor.Row, s.cursor.Col-1)
		s.cursor.Col--
		return
	}
	prevLen := s.doc.Row(s.cursor.Row - 1).Len()
	s.doc.JoinRow(s.cursor.Row)
	s.cursor.Row--
	s.cursor.Col = prevLen
}

func (s *Session) pageUp() {
	s.cursor.Row = s.view.RowOffset
	for range max(s.height, 1) {
		s.moveCursor(buffer.DirUp)
	}
}

func (s *Session) pageDown() {
	s.cursor.Row = min(s.view.RowOffset+max(s.height, 1)-1, s.doc.RowCount())
	for range max(s.height, 1) {
		s.moveCursor(buffer.DirDown)
	}
}

func (s *Session) startSearch() {
	s.savedCursor = s.cursor
	s.savedView = s.view
	s.startPrompt(modeSearch)
}

func (s *Session) startPrompt(m mode) {
	s.mode = m
	s.input = s.input[:0]
	s.showPrompt()
}

func (s *Session) showPrompt() {
	switch s.mode {
	case modeSearch:
		s.SetStatus(searchPrompt, string(s.input))
	case modeSaveAs:
		s.SetStatus(saveAsPrompt, string(s.input))
	}
}

func (s *Session) handlePromptKey(k Key) Action {
	switch k.Kind {
	case KeyEscape:
		s.cancelPrompt()
		return ActionNone
	case KeyEnter:
		if len(s.input) == 0 {
			break
		}
		return s.acceptPrompt()
	case KeyBackspace, KeyDelete:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case KeyCtrl:
		if k.Rune == 'h' && len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case KeyRune:
		if k.Rune >= ' ' && k.Rune != 127 {
			s.input = append(s.input, k.Rune)
		}
	}

	s.showPrompt()
	if s.mode == modeSearch {
		s.searchKey(k)
	}
	return ActionNone
}

// searchKey runs the incremental search step for a key typed in the
// search prompt. Arrows step between matches; any other key restarts the
// search from the top.
func (s *Session) searchKey(k Key) {
	var (
		m  search.Match
		ok bool
	)
	switch k.Kind {
	case KeyRight, KeyDown:
		m, ok = s.search.Next()
	case KeyLeft, KeyUp:
		m, ok = s.search.Prev()
	default:
		m, ok = s.search.SetQuery(string(s.input))
	}
	if !ok {
		return
	}
	s.cursor = buffer.Pos{Row: m.Row, Col: m.Col}
	// Forces the next scroll to put the match on the top row.
	s.view.RowOffset = s.doc.RowCount()
}

func (s *Session) cancelPrompt() {
	switch s.mode {
	case modeSearch:
		s.search.Cancel()
		s.cursor = s.savedCursor
		s.view.RowOffset = s.savedView.RowOffset
		s.view.ColOffset = s.savedView.ColOffset
		s.SetStatus("")
	case modeSaveAs:
		s.SetStatus("Save aborted")
	}
	s.mode = modeEdit
	s.input = s.input[:0]
}

func (s *Session) acceptPrompt() Action {
	m := s.mode
	s.mode = modeEdit
	text := string(s.input)
	s.input = s.input[:0]

	switch m {
	case modeSearch:
		s.search.Restore()
		s.SetStatus("")
	case modeSaveAs:
		s.cfg.Filename = text
		if s.cfg.Rules == nil {
			s.doc.SetRules(syntax.Select(text))
		}
		return ActionSave
	}
	return ActionNone
}

// Save writes the dumped document through the configured Saver and reports
// the outcome on the message bar.
func (s *Session) Save() error {
	if s.cfg.Saver == nil {
		s.SetStatus("Can't save! I/O error: %s", ErrNoSaver)
		return ErrNoSaver
	}
	text := s.doc.Dump()
	if err := s.cfg.Saver(s.cfg.Filename, text); err != nil {
		s.SetStatus("Can't save! I/O error: %s", err)
		return fmt.Errorf("save %s: %w", s.cfg.Filename, err)
	}
	s.doc.MarkClean()
	s.SetStatus("%d bytes written to disk", len(text))
	slog.Debug("editor: saved", "file", s.cfg.Filename, "bytes", len(text))
	return nil
}

func (s *Session) scroll() {
	s.cursor = s.doc.ClampPos(s.cursor)
	s.rx = 0
	if r := s.doc.Row(s.cursor.Row); r != nil {
		s.rx = r.VisualCol(s.cursor.Col, s.doc.TabWidth())
	}
	s.view.Height = s.height
	s.view.Width = s.width - s.gutterWidth()
	s.view.Scroll(s.cursor.Row, s.rx)
}
