package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

// Move returns p moved one step in dir and clamped to the document.
//
// Left at column 0 wraps to the end of the previous row; right at the end of
// a row wraps to the start of the next one. Vertical moves keep the column
// where the target row is long enough.
func (d *Document) Move(p Pos, dir MoveDir) Pos {
	p = d.ClampPos(p)
	row, col := p.Row, p.Col
	n := len(d.rows)

	switch dir {
	case DirLeft:
		if col > 0 {
			col--
		} else if row > 0 {
			row--
			col = d.lineLen(row)
		}
	case DirRight:
		if row < n {
			if col < d.lineLen(row) {
				col++
			} else {
				row++
				col = 0
			}
		}
	case DirUp:
		if row > 0 {
			row--
		}
	case DirDown:
		if row < n {
			row++
		}
	case DirHome:
		col = 0
	case DirEnd:
		col = d.lineLen(row)
	}

	return d.ClampPos(Pos{Row: row, Col: col})
}
