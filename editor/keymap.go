package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding
	Escape            key.Binding

	Find, Save, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Find: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// Help lists the bindings shown in the startup message.
func (km KeyMap) Help() []key.Binding {
	return []key.Binding{km.Save, km.Quit, km.Find}
}

// Translate decodes a Bubble Tea key message into logical keys. Pasted or
// multi-rune input yields one KeyRune per rune with line breaks as KeyEnter;
// anything unrecognised decodes as a bare escape.
func (km KeyMap) Translate(msg tea.KeyMsg) []Key {
	switch {
	case key.Matches(msg, km.Left):
		return []Key{{Kind: KeyLeft}}
	case key.Matches(msg, km.Right):
		return []Key{{Kind: KeyRight}}
	case key.Matches(msg, km.Up):
		return []Key{{Kind: KeyUp}}
	case key.Matches(msg, km.Down):
		return []Key{{Kind: KeyDown}}
	case key.Matches(msg, km.PageUp):
		return []Key{{Kind: KeyPageUp}}
	case key.Matches(msg, km.PageDown):
		return []Key{{Kind: KeyPageDown}}
	case key.Matches(msg, km.Home):
		return []Key{{Kind: KeyHome}}
	case key.Matches(msg, km.End):
		return []Key{{Kind: KeyEnd}}
	case key.Matches(msg, km.Backspace):
		return []Key{{Kind: KeyBackspace}}
	case key.Matches(msg, km.Delete):
		return []Key{{Kind: KeyDelete}}
	case key.Matches(msg, km.Enter):
		return []Key{{Kind: KeyEnter}}
	case key.Matches(msg, km.Tab):
		return []Key{Rune('\t')}
	case key.Matches(msg, km.Escape):
		return []Key{{Kind: KeyEscape}}
	case key.Matches(msg, km.Find):
		return []Key{Ctrl('f')}
	case key.Matches(msg, km.Save):
		return []Key{Ctrl('s')}
	case key.Matches(msg, km.Quit):
		return []Key{Ctrl('q')}
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
		return expandRunes(msg.Runes)
	}
	if msg.Type == tea.KeySpace {
		return []Key{Rune(' ')}
	}

	if s := msg.String(); strings.HasPrefix(s, "ctrl+") && len(s) == len("ctrl+")+1 {
		letter := rune(s[len(s)-1])
		if letter >= 'a' && letter <= 'z' {
			return []Key{Ctrl(letter)}
		}
	}
	return []Key{{Kind: KeyEscape}}
}

// expandRunes splits typed or pasted text into keys. "\r\n", "\r" and "\n"
// each become a single KeyEnter so rows never hold a line break.
func expandRunes(runes []rune) []Key {
	out := make([]Key, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			out = append(out, Key{Kind: KeyEnter})
		case '\n':
			out = append(out, Key{Kind: KeyEnter})
		default:
			out = append(out, Rune(r))
		}
	}
	return out
}
