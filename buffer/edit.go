package buffer

// InsertRow inserts a row holding text before row at.
// at is clamped to [0, RowCount].
func (d *Document) InsertRow(at int, text string) {
	at = clampInt(at, 0, len(d.rows))

	raw := []rune(text)
	r := &Row{raw: raw, rendered: render(raw, d.tabWidth)}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = r
	d.reindex(at)

	d.rehighlight(at, at)
	d.dirty++
}

// DeleteRow removes row at. Out-of-range rows are ignored.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.reindex(at)

	if at < len(d.rows) {
		d.rehighlight(at, -1)
	}
	d.dirty++
}

// InsertChar inserts ch before column at of row. at is clamped to the row.
func (d *Document) InsertChar(row, at int, ch rune) {
	r := d.Row(row)
	if r == nil {
		return
	}
	at = clampInt(at, 0, len(r.raw))
	r.raw = append(r.raw, 0)
	copy(r.raw[at+1:], r.raw[at:])
	r.raw[at] = ch
	d.updateRow(row)
}

// DeleteChar removes the character at column at of row. Columns outside
// [0, len) are ignored.
func (d *Document) DeleteChar(row, at int) {
	r := d.Row(row)
	if r == nil || at < 0 || at >= len(r.raw) {
		return
	}
	r.raw = append(r.raw[:at], r.raw[at+1:]...)
	d.updateRow(row)
}

// AppendString appends s to the end of row.
func (d *Document) AppendString(row int, s string) {
	r := d.Row(row)
	if r == nil || s == "" {
		return
	}
	r.raw = append(r.raw, []rune(s)...)
	d.updateRow(row)
}

// SplitRow moves the text of row from column at onwards into a new row
// inserted right after it.
func (d *Document) SplitRow(row, at int) {
	r := d.Row(row)
	if r == nil {
		return
	}
	at = clampInt(at, 0, len(r.raw))

	tail := append([]rune(nil), r.raw[at:]...)
	r.raw = r.raw[:at:at]
	r.rendered = render(r.raw, d.tabWidth)

	next := &Row{raw: tail, rendered: render(tail, d.tabWidth)}
	d.rows = append(d.rows, nil)
	copy(d.rows[row+2:], d.rows[row+1:])
	d.rows[row+1] = next
	d.reindex(row + 1)

	d.rehighlight(row, row+1)
	d.dirty++
}

// JoinRow appends row to the row above it and removes it. Joining row 0 or
// an out-of-range row is a no-op.
func (d *Document) JoinRow(row int) {
	if row <= 0 || row >= len(d.rows) {
		return
	}
	d.AppendString(row-1, string(d.rows[row].raw))
	d.DeleteRow(row)
}

func (d *Document) updateRow(row int) {
	r := d.rows[row]
	r.rendered = render(r.raw, d.tabWidth)
	d.rehighlight(row, row)
	d.dirty++
}
