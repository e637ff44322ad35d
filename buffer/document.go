package buffer

import (
	"log/slog"
	"strings"

	"github.com/iw2rmb/scribe/syntax"
)

type Options struct {
	TabWidth int // default: DefaultTabWidth
	Rules    *syntax.Rules
}

// Document is the ordered row store of one open buffer.
type Document struct {
	rows     []*Row
	tabWidth int
	rules    *syntax.Rules

	dirty int
}

func New(opt Options) *Document {
	if opt.TabWidth <= 0 {
		opt.TabWidth = DefaultTabWidth
	}
	return &Document{
		tabWidth: opt.TabWidth,
		rules:    opt.Rules,
	}
}

// Load replaces the document content with lines, one row per line.
func (d *Document) Load(lines []string) {
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		d.InsertRow(len(d.rows), line)
	}
	d.dirty = 0
	slog.Debug("document loaded", "rows", len(d.rows))
}

func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

func (d *Document) TabWidth() int { return d.tabWidth }

func (d *Document) Rules() *syntax.Rules { return d.rules }

// SetRules swaps the rule table and re-highlights every row.
func (d *Document) SetRules(r *syntax.Rules) {
	d.rules = r
	d.rehighlight(0, len(d.rows)-1)
}

// Dirty reports the number of modifications since load or MarkClean.
func (d *Document) Dirty() int { return d.dirty }

func (d *Document) MarkClean() { d.dirty = 0 }

// Dump flattens the document: every row's raw text followed by '\n'.
func (d *Document) Dump() string {
	n := 0
	for _, r := range d.rows {
		n += len(r.raw) + 1
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, r := range d.rows {
		sb.WriteString(string(r.raw))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Lines returns the raw text of every row.
func (d *Document) Lines() []string {
	out := make([]string, 0, len(d.rows))
	for _, r := range d.rows {
		out = append(out, string(r.raw))
	}
	return out
}

func (d *Document) lineLen(row int) int {
	if row < 0 || row >= len(d.rows) {
		return 0
	}
	return len(d.rows[row].raw)
}

// ClampPos clamps p into the document's current bounds.
func (d *Document) ClampPos(p Pos) Pos {
	return ClampPos(p, len(d.rows), d.lineLen)
}

func (d *Document) reindex(from int) {
	for i := from; i < len(d.rows); i++ {
		d.rows[i].idx = i
	}
}
