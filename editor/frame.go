package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/scribe/syntax"
)

// Paint is one run of text sharing a highlight category. Control spans
// carry a placeholder glyph and no category.
type Paint struct {
	Category syntax.Category
	Text     string
	Control  bool
}

// FrameRow is one screen row of the text area. Rows past the end of the
// document are empty; Banner marks the empty-document banner row.
type FrameRow struct {
	Gutter string
	Spans  []Paint
	Banner bool
}

// Frame is the visible window of the document, ready to paint.
// CursorX and CursorY are screen cells relative to the text area, gutter
// included.
type Frame struct {
	Rows    []FrameRow
	CursorX int
	CursorY int
}

// Frame composes the rows currently in view.
func (s *Session) Frame() Frame {
	s.scroll()

	gw := s.gutterWidth()
	textWidth := max(s.width-gw, 0)
	n := s.doc.RowCount()

	f := Frame{Rows: make([]FrameRow, 0, s.height)}
	for y := 0; y < s.height; y++ {
		at := y + s.view.RowOffset
		if at >= n {
			if n == 0 && y == s.height/3 {
				f.Rows = append(f.Rows, FrameRow{
					Banner: true,
					Spans:  []Paint{{Text: bannerText(s.cfg.Version, s.width)}},
				})
				continue
			}
			f.Rows = append(f.Rows, FrameRow{})
			continue
		}

		row := s.doc.Row(at)
		fr := FrameRow{Spans: paintSpans(row.RenderedRunes(), row.Highlight(), s.view.ColOffset, textWidth)}
		if gw > 0 {
			fr.Gutter = lineNumberText(at, n)
		}
		f.Rows = append(f.Rows, fr)
	}

	f.CursorX = gw + s.rx - s.view.ColOffset
	f.CursorY = s.cursor.Row - s.view.RowOffset
	return f
}

func bannerText(version string, width int) string {
	msg := "scribe editor"
	if version != "" {
		msg += " -- version " + version
	}
	msg = runewidth.Truncate(msg, width, "")
	pad := (width - runewidth.StringWidth(msg)) / 2
	return strings.Repeat(" ", max(pad, 0)) + msg
}

// paintSpans coalesces rendered[off:off+width] into runs of equal category.
func paintSpans(rendered []rune, hl []syntax.Category, off, width int) []Paint {
	off = max(off, 0)
	if off >= len(rendered) || width <= 0 {
		return nil
	}
	end := min(len(rendered), off+width)

	var (
		spans []Paint
		sb    strings.Builder
		cur   syntax.Category
		open  bool
	)
	flush := func() {
		if !open {
			return
		}
		spans = append(spans, Paint{Category: cur, Text: sb.String()})
		sb.Reset()
		open = false
	}

	for i := off; i < end; i++ {
		r := rendered[i]
		if isControl(r) {
			flush()
			spans = append(spans, Paint{Text: string(controlGlyph(r)), Control: true})
			continue
		}
		c := syntax.Normal
		if i < len(hl) {
			c = hl[i]
		}
		if open && c != cur {
			flush()
		}
		cur = c
		open = true
		sb.WriteRune(r)
	}
	flush()
	return spans
}

func isControl(r rune) bool { return r < ' ' || r == 127 }

// controlGlyph maps ^A..^Z to their caret letter and everything else to '?'.
func controlGlyph(r rune) rune {
	if r >= 0 && r <= 26 {
		return '@' + r
	}
	return '?'
}
