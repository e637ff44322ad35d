package editor

import (
	"time"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/syntax"
)

const (
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
)

// Saver persists the dumped document text under filename.
type Saver func(filename, text string) error

// Config configures a Session and the Model wrapping it.
type Config struct {
	// Filename is shown in the status bar and passed to Saver.
	Filename string
	// Lines populates the document, one entry per row without terminators.
	Lines []string

	// Forwarded to buffer.Options.
	TabWidth int
	Rules    *syntax.Rules

	// Rendering options. A Style without Categories is replaced by
	// DefaultStyle.
	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap

	Saver          Saver
	OnChange       func(ChangeEvent)
	MessageTimeout time.Duration
	QuitTimes      int

	// Version is printed in the empty-document banner.
	Version string

	// Clock overrides time.Now for status message expiry.
	Clock func() time.Time
}

func (c Config) normalized() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = buffer.DefaultTabWidth
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = DefaultMessageTimeout
	}
	if c.QuitTimes <= 0 {
		c.QuitTimes = DefaultQuitTimes
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if len(c.KeyMap.Quit.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Style.Categories == nil {
		c.Style = DefaultStyle()
	}
	return c
}
