package buffer

import "github.com/iw2rmb/scribe/syntax"

// Row is one line of the document.
//
// len(hl) == len(rendered) and len(rendered) >= len(raw) hold between
// operations; idx always equals the row's position in the document.
type Row struct {
	idx      int
	raw      []rune
	rendered []rune
	hl       []syntax.Category

	// entry is the block-comment state the row was last classified with,
	// open its exit state.
	entry bool
	open  bool
}

func (r *Row) Index() int { return r.idx }

func (r *Row) Raw() string { return string(r.raw) }

func (r *Row) Rendered() string { return string(r.rendered) }

// RenderedRunes returns the rendered text. The slice must not be modified.
func (r *Row) RenderedRunes() []rune { return r.rendered }

func (r *Row) Len() int { return len(r.raw) }

func (r *Row) RenderedLen() int { return len(r.rendered) }

// Highlight returns a copy of the per-rendered-rune categories.
func (r *Row) Highlight() []syntax.Category {
	return append([]syntax.Category(nil), r.hl...)
}

// OpenComment reports whether the row ends inside a block comment.
func (r *Row) OpenComment() bool { return r.open }

// VisualCol maps a raw column of this row to its rendered column.
func (r *Row) VisualCol(col, tabWidth int) int { return VisualCol(r.raw, col, tabWidth) }

// CharIndex maps a rendered column of this row to its raw column.
func (r *Row) CharIndex(visualCol, tabWidth int) int { return CharIndex(r.raw, visualCol, tabWidth) }
