package editor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/syntax"
)

// categoryTokens lists, per category, the chroma tokens tried in order.
var categoryTokens = map[syntax.Category][]chroma.TokenType{
	syntax.Number:           {chroma.LiteralNumber, chroma.Literal},
	syntax.String:           {chroma.LiteralString, chroma.Literal},
	syntax.Comment:          {chroma.CommentSingle, chroma.Comment},
	syntax.BlockComment:     {chroma.CommentMultiline, chroma.Comment},
	syntax.KeywordPrimary:   {chroma.Keyword},
	syntax.KeywordSecondary: {chroma.KeywordType, chroma.NameBuiltin, chroma.Keyword},
}

// Themes returns the names of the available chroma styles.
func Themes() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeStyle builds a Style from the named chroma style. The empty name
// returns DefaultStyle.
func ThemeStyle(name string) (Style, error) {
	st := DefaultStyle()
	if name == "" {
		return st, nil
	}
	cs, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return st, fmt.Errorf("unknown theme %q", name)
	}

	base := cs.Get(chroma.Background)
	text := lipgloss.NewStyle()
	if base.Colour.IsSet() {
		text = text.Foreground(lipgloss.Color(base.Colour.String()))
	}
	if base.Background.IsSet() {
		text = text.Background(lipgloss.Color(base.Background.String()))
	}
	st.Text = text
	st.Control = text.Reverse(true)

	for cat, tokens := range categoryTokens {
		st.Categories[cat] = tokenStyle(cs, text, tokens)
	}

	match := text.Reverse(true)
	if hl := cs.Get(chroma.LineHighlight); hl.Background.IsSet() {
		match = text.Background(lipgloss.Color(hl.Background.String()))
	}
	st.Categories[syntax.Match] = match

	if ln := cs.Get(chroma.LineNumbers); ln.Colour.IsSet() {
		st.Gutter = lipgloss.NewStyle().Foreground(lipgloss.Color(ln.Colour.String()))
		st.LineNum = st.Gutter
	}
	return st, nil
}

func tokenStyle(cs *chroma.Style, base lipgloss.Style, tokens []chroma.TokenType) lipgloss.Style {
	for _, tt := range tokens {
		e := cs.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		out := base.Foreground(lipgloss.Color(e.Colour.String()))
		if e.Bold == chroma.Yes {
			out = out.Bold(true)
		}
		if e.Italic == chroma.Yes {
			out = out.Italic(true)
		}
		return out
	}
	return base
}
