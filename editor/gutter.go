package editor

import "fmt"

// LineNumberWidth returns the line-number gutter width for lineCount:
// its decimal digits plus one separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func lineNumberText(row, lineCount int) string {
	return fmt.Sprintf("%*d ", gutterDigits(lineCount), row+1)
}

func (s *Session) gutterWidth() int {
	if !s.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(s.doc.RowCount())
}
