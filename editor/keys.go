package editor

import "fmt"

type KeyKind uint8

const (
	KeyNone KeyKind = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyCtrl
)

// Key is one decoded logical key event.
//
// Rune holds the typed character for KeyRune and the lowercase letter for
// KeyCtrl.
type Key struct {
	Kind KeyKind
	Rune rune
}

func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

func Ctrl(letter rune) Key { return Key{Kind: KeyCtrl, Rune: letter} }

func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		return fmt.Sprintf("%q", k.Rune)
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	}
	if int(k.Kind) < len(keyNames) {
		return keyNames[k.Kind]
	}
	return "unknown"
}

var keyNames = [...]string{
	KeyNone:      "none",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
}
