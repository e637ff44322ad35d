package editor

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMap_Translate(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []Key
	}{
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: []Key{{Kind: KeyLeft}}},
		{name: "pgdown", msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: []Key{{Kind: KeyPageDown}}},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: []Key{{Kind: KeyHome}}},
		{name: "delete", msg: tea.KeyMsg{Type: tea.KeyDelete}, want: []Key{{Kind: KeyDelete}}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: []Key{{Kind: KeyEnter}}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: []Key{{Kind: KeyBackspace}}},
		{name: "ctrl+h", msg: tea.KeyMsg{Type: tea.KeyCtrlH}, want: []Key{{Kind: KeyBackspace}}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: []Key{Rune('\t')}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: []Key{{Kind: KeyEscape}}},
		{name: "find", msg: tea.KeyMsg{Type: tea.KeyCtrlF}, want: []Key{Ctrl('f')}},
		{name: "save", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, want: []Key{Ctrl('s')}},
		{name: "quit", msg: tea.KeyMsg{Type: tea.KeyCtrlQ}, want: []Key{Ctrl('q')}},
		{name: "other ctrl", msg: tea.KeyMsg{Type: tea.KeyCtrlL}, want: []Key{Ctrl('l')}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: []Key{Rune(' ')}},
		{name: "runes", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")}, want: []Key{Rune('h'), Rune('é')}},
		{name: "paste lf", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb"), Paste: true}, want: []Key{Rune('a'), {Kind: KeyEnter}, Rune('b')}},
		{name: "paste crlf", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\n\rb"), Paste: true}, want: []Key{Rune('a'), {Kind: KeyEnter}, {Kind: KeyEnter}, Rune('b')}},
		{name: "alt rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, want: []Key{{Kind: KeyEscape}}},
		{name: "unknown", msg: tea.KeyMsg{Type: tea.KeyF5}, want: []Key{{Kind: KeyEscape}}},
	}

	for _, tc := range cases {
		got := km.Translate(tc.msg)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestKey_String(t *testing.T) {
	cases := map[Key]string{
		Rune('a'):          "'a'",
		Ctrl('q'):          "ctrl+q",
		{Kind: KeyPageUp}:  "pgup",
		{Kind: KeyKind(99)}: "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("String(%#v): got %q, want %q", k, got, want)
		}
	}
}
