// Package search implements cyclic substring search over document rows with
// a transient highlight overlay on the current match.
package search

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/syntax"
)

type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Rows is the document surface the searcher reads and paints on.
// *buffer.Document satisfies it.
type Rows interface {
	RowCount() int
	Row(i int) *buffer.Row
	TabWidth() int
	SaveHighlight(row int) []syntax.Category
	RestoreHighlight(row int, saved []syntax.Category)
	Overlay(row, start, end int, c syntax.Category)
}

// Match locates a hit. RenderedCol is the rendered offset of the first
// matched rune, Col the raw column the cursor should move to.
type Match struct {
	Row         int
	RenderedCol int
	Col         int
}

// Searcher keeps the query, direction and last-match anchor between steps,
// and owns the highlight saved from under the current overlay.
type Searcher struct {
	rows Rows

	query string
	dir   Direction
	last  int

	savedRow int
	saved    []syntax.Category
}

func New(rows Rows) *Searcher {
	return &Searcher{
		rows:     rows,
		dir:      Forward,
		last:     -1,
		savedRow: -1,
	}
}

func (s *Searcher) Query() string { return s.query }

func (s *Searcher) Direction() Direction { return s.dir }

// Anchor returns the row of the last match, if any.
func (s *Searcher) Anchor() (int, bool) {
	if s.last < 0 {
		return 0, false
	}
	return s.last, true
}

// Active reports whether a match overlay is currently painted.
func (s *Searcher) Active() bool { return s.saved != nil }

// SetQuery replaces the query, drops the anchor and searches forward from the
// top of the document.
func (s *Searcher) SetQuery(query string) (Match, bool) {
	s.query = query
	s.Reset()
	return s.Step(Forward)
}

func (s *Searcher) Next() (Match, bool) { return s.Step(Forward) }

func (s *Searcher) Prev() (Match, bool) { return s.Step(Backward) }

// Step moves to the next match of the current query in dir, wrapping at the
// document bounds. Without an anchor the search always runs forward.
func (s *Searcher) Step(dir Direction) (Match, bool) {
	s.Restore()
	if s.query == "" || s.rows == nil {
		return Match{}, false
	}
	if s.last < 0 || (dir != Forward && dir != Backward) {
		dir = Forward
	}
	s.dir = dir

	n := s.rows.RowCount()
	qlen := utf8.RuneCountInString(s.query)
	cur := s.last
	for i := 0; i < n; i++ {
		cur += int(dir)
		if cur < 0 {
			cur = n - 1
		} else if cur >= n {
			cur = 0
		}

		row := s.rows.Row(cur)
		rendered := row.Rendered()
		off := strings.Index(rendered, s.query)
		if off < 0 {
			continue
		}
		renderedCol := utf8.RuneCountInString(rendered[:off])

		s.last = cur
		s.savedRow = cur
		s.saved = s.rows.SaveHighlight(cur)
		s.rows.Overlay(cur, renderedCol, renderedCol+qlen, syntax.Match)

		return Match{
			Row:         cur,
			RenderedCol: renderedCol,
			Col:         row.CharIndex(renderedCol, s.rows.TabWidth()),
		}, true
	}

	slog.Debug("search: no match", "query", s.query, "rows", n)
	return Match{}, false
}

// Reset forgets the anchor and returns to forward direction. Any overlay
// stays until the next step or Restore.
func (s *Searcher) Reset() {
	s.last = -1
	s.dir = Forward
}

// Restore puts back the highlight saved under the current overlay.
func (s *Searcher) Restore() {
	if s.saved == nil {
		return
	}
	s.rows.RestoreHighlight(s.savedRow, s.saved)
	s.saved = nil
	s.savedRow = -1
}

// Cancel removes the overlay and clears all search state.
func (s *Searcher) Cancel() {
	s.Restore()
	s.Reset()
	s.query = ""
}
