package editor

// Viewport is the visible window over the rendered document. Offsets persist
// between frames; Height and Width count text cells only.
type Viewport struct {
	RowOffset int
	ColOffset int
	Height    int
	Width     int
}

// Scroll moves the offsets the minimum needed to keep (row, visualCol)
// visible.
func (v *Viewport) Scroll(row, visualCol int) {
	h := max(v.Height, 1)
	w := max(v.Width, 1)

	if row < v.RowOffset {
		v.RowOffset = row
	}
	if row >= v.RowOffset+h {
		v.RowOffset = row - h + 1
	}
	if visualCol < v.ColOffset {
		v.ColOffset = visualCol
	}
	if visualCol >= v.ColOffset+w {
		v.ColOffset = visualCol - w + 1
	}
	v.RowOffset = max(v.RowOffset, 0)
	v.ColOffset = max(v.ColOffset, 0)
}
