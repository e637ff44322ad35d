package buffer

// Pos points into the document by (row, col) in raw runes.
// Row and Col are 0-based. Row may equal RowCount, the empty virtual row
// past the last line where new text is appended.
type Pos struct {
	Row int
	Col int
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of rows in the document.
// - lineLen(row) returns the raw rune length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row <= rowCount
// - 0 <= Col <= lineLen(Row), and Col == 0 on the virtual row
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount < 0 {
		rowCount = 0
	}
	row := clampInt(p.Row, 0, rowCount)

	maxCol := 0
	if row < rowCount && lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}
