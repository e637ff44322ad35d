package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const maxStatusName = 20

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	f := m.s.Frame()
	rows := make([]string, 0, len(f.Rows))
	for y, fr := range f.Rows {
		rows = append(rows, m.renderRow(fr, y == f.CursorY, f.CursorX))
	}

	lines := make([]string, 0, 1+statusRows)
	if len(rows) > 0 {
		vp := m.viewport
		vp.SetContent(strings.Join(rows, "\n"))
		lines = append(lines, vp.View())
	}
	lines = append(lines, m.statusBar())
	if m.height > len(f.Rows)+1 {
		lines = append(lines, m.messageBar())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(fr FrameRow, cursorRow bool, cursorX int) string {
	st := m.cfg.Style
	var sb strings.Builder
	x := 0

	if fr.Gutter != "" {
		ln := st.LineNum
		if cursorRow {
			ln = st.LineNumActive
		}
		sb.WriteString(ln.Inherit(st.Gutter).Render(fr.Gutter))
		x += len(fr.Gutter)
	}

	for _, p := range fr.Spans {
		style := st.ForCategory(p.Category)
		switch {
		case fr.Banner:
			style = st.Banner
		case p.Control:
			style = st.Control
		}

		runes := []rune(p.Text)
		if cursorRow && cursorX >= x && cursorX < x+len(runes) {
			i := cursorX - x
			writeStyled(&sb, style, string(runes[:i]))
			sb.WriteString(st.Cursor.Inherit(style).Render(string(runes[i])))
			writeStyled(&sb, style, string(runes[i+1:]))
		} else {
			writeStyled(&sb, style, p.Text)
		}
		x += len(runes)
	}

	if cursorRow && cursorX >= x {
		sb.WriteString(strings.Repeat(" ", cursorX-x))
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func writeStyled(sb *strings.Builder, st lipgloss.Style, text string) {
	if text == "" {
		return
	}
	sb.WriteString(st.Render(text))
}

// statusBar shows the file name, row count and dirty flag on the left and
// the file type with the cursor row on the right.
func (m Model) statusBar() string {
	s := m.s
	name := s.Filename()
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, maxStatusName, "")

	modified := ""
	if s.Document().Dirty() > 0 {
		modified = "(modified)"
	}
	rows := s.Document().RowCount()
	left := fmt.Sprintf("%s - %d lines %s", name, rows, modified)
	right := fmt.Sprintf("%s | %d/%d", s.FileType(), s.Cursor().Row+1, rows)

	left = runewidth.Truncate(left, m.width, "")
	used := uniseg.StringWidth(left)
	line := left
	if rw := uniseg.StringWidth(right); used+rw <= m.width {
		line += strings.Repeat(" ", m.width-used-rw) + right
	} else {
		line += strings.Repeat(" ", m.width-used)
	}
	return m.cfg.Style.StatusBar.Render(line)
}

func (m Model) messageBar() string {
	msg := runewidth.Truncate(m.s.Message(), m.width, "")
	return m.cfg.Style.MessageBar.Render(msg)
}
