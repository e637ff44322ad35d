package buffer

import "github.com/iw2rmb/scribe/syntax"

// rehighlight classifies rows from..through unconditionally, then keeps going
// while a row's entry state no longer matches the exit state of the row above.
// Every row is classified at most once per call.
func (d *Document) rehighlight(from, through int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(d.rows); i++ {
		r := d.rows[i]
		entry := i > 0 && d.rows[i-1].open
		if i > through && r.hl != nil && r.entry == entry {
			return
		}
		r.hl, r.open = syntax.HighlightLine(r.rendered, d.rules, entry)
		r.entry = entry
	}
}

// SaveHighlight returns a copy of row's current highlight, or nil when row is
// out of range.
func (d *Document) SaveHighlight(row int) []syntax.Category {
	r := d.Row(row)
	if r == nil {
		return nil
	}
	return r.Highlight()
}

// RestoreHighlight copies saved back over row's highlight. Nothing happens
// when the row no longer has the saved length.
func (d *Document) RestoreHighlight(row int, saved []syntax.Category) {
	r := d.Row(row)
	if r == nil || len(saved) != len(r.hl) {
		return
	}
	copy(r.hl, saved)
}

// Overlay paints rendered columns [start, end) of row with c, clamped to the
// rendered length.
func (d *Document) Overlay(row, start, end int, c syntax.Category) {
	r := d.Row(row)
	if r == nil {
		return
	}
	start = clampInt(start, 0, len(r.hl))
	end = clampInt(end, start, len(r.hl))
	for i := start; i < end; i++ {
		r.hl[i] = c
	}
}
