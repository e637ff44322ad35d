package buffer

// DefaultTabWidth is the tab stop width used when none is configured.
const DefaultTabWidth = 8

func normTabWidth(tabWidth int) int {
	if tabWidth < 1 {
		return 1
	}
	return tabWidth
}

func tabAdvance(visualCol, tabWidth int) int {
	return tabWidth - visualCol%tabWidth
}

// VisualCol maps a raw character index to its rendered column.
//
// charIdx is clamped to [0, len(raw)].
func VisualCol(raw []rune, charIdx, tabWidth int) int {
	tabWidth = normTabWidth(tabWidth)
	charIdx = clampInt(charIdx, 0, len(raw))

	col := 0
	for _, r := range raw[:charIdx] {
		if r == '\t' {
			col += tabAdvance(col, tabWidth)
			continue
		}
		col++
	}
	return col
}

// CharIndex maps a rendered column back to the raw character covering it.
//
// A column inside an expanded tab maps to the tab itself. Columns past the
// end of the line map to len(raw); negative columns map to 0.
func CharIndex(raw []rune, visualCol, tabWidth int) int {
	tabWidth = normTabWidth(tabWidth)
	if visualCol < 0 {
		return 0
	}

	col := 0
	for i, r := range raw {
		if r == '\t' {
			col += tabAdvance(col, tabWidth)
		} else {
			col++
		}
		if col > visualCol {
			return i
		}
	}
	return len(raw)
}

// render expands tabs in raw to spaces up to the next tab stop.
func render(raw []rune, tabWidth int) []rune {
	tabWidth = normTabWidth(tabWidth)

	tabs := 0
	for _, r := range raw {
		if r == '\t' {
			tabs++
		}
	}
	out := make([]rune, 0, len(raw)+tabs*(tabWidth-1))
	for _, r := range raw {
		if r != '\t' {
			out = append(out, r)
			continue
		}
		for n := tabAdvance(len(out), tabWidth); n > 0; n-- {
			out = append(out, ' ')
		}
	}
	return out
}
