package editor

import "github.com/iw2rmb/scribe/buffer"

// ChangeEvent reports a key that modified the document.
type ChangeEvent struct {
	Key    Key
	Cursor buffer.Pos
	Rows   int
	// Dirty is the modification count since the last load or save.
	Dirty int
}

func (s *Session) buildChangeEvent(k Key) ChangeEvent {
	return ChangeEvent{
		Key:    k,
		Cursor: s.cursor,
		Rows:   s.doc.RowCount(),
		Dirty:  s.doc.Dirty(),
	}
}
