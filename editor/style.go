package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/syntax"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text    lipgloss.Style
	Cursor  lipgloss.Style
	Control lipgloss.Style
	Banner  lipgloss.Style

	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style

	// Categories maps highlight categories to foreground styles.
	// Missing categories paint with Text.
	Categories map[syntax.Category]lipgloss.Style
}

// ForCategory returns the style painting c.
func (s Style) ForCategory(c syntax.Category) lipgloss.Style {
	if st, ok := s.Categories[c]; ok {
		return st
	}
	return s.Text
}

// DefaultStyle uses the 16-colour ANSI palette.
func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Control:       lipgloss.NewStyle().Reverse(true),
		Banner:        lipgloss.NewStyle().Faint(true),
		StatusBar:     lipgloss.NewStyle().Reverse(true),
		MessageBar:    lipgloss.NewStyle(),
		Categories: map[syntax.Category]lipgloss.Style{
			syntax.Number:           fg("1"),
			syntax.String:           fg("5"),
			syntax.Comment:          fg("6"),
			syntax.BlockComment:     fg("6"),
			syntax.KeywordPrimary:   fg("3"),
			syntax.KeywordSecondary: fg("2"),
			syntax.Match:            fg("4"),
		},
	}
}
