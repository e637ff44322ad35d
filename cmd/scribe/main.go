package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/syntax"
)

type options struct {
	filename   string
	tabWidth   int
	theme      string
	lang       string
	noLineNums bool
	logPath    string
	logLevel   string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opt options
	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: scribe [flags] [file]\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&opt.tabWidth, "tab-width", 8, "tab stop width")
	fs.StringVar(&opt.theme, "theme", "", "chroma style name for colours, or \"help\" to list them (default: terminal palette)")
	fs.StringVar(&opt.lang, "lang", "", "force a highlighting table by name")
	fs.BoolVar(&opt.noLineNums, "no-line-numbers", false, "hide the line-number gutter")
	fs.StringVar(&opt.logPath, "log", "", "write debug logs to this file")
	fs.StringVar(&opt.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opt.filename = fs.Arg(0)
	default:
		return opt, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if opt.tabWidth < 1 {
		return opt, fmt.Errorf("invalid --tab-width %d", opt.tabWidth)
	}
	return opt, nil
}

// setupLogging installs the default logger. Without a log file the logs are
// discarded since the terminal belongs to the UI.
func setupLogging(path, level string) (io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	return f, nil
}

var errNotUTF8 = errors.New("file is not valid UTF-8")

// loadLines reads filename as rows with line terminators stripped.
func loadLines(filename string) ([]string, error) {
	if filename == "" {
		return nil, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	// Rows hold runes, so invalid bytes would be saved back as U+FFFD.
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("load %s: %w", filename, errNotUTF8)
	}
	return splitLines(string(data)), nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func saveFile(filename, text string) error {
	return os.WriteFile(filename, []byte(text), 0o644)
}

func selectRules(filename, lang string) (*syntax.Rules, error) {
	if lang == "" {
		return syntax.Select(filename), nil
	}
	r := syntax.Lookup(lang)
	if r == nil {
		return nil, fmt.Errorf("unknown --lang %q", lang)
	}
	return r, nil
}

func newConfig(opt options, lines []string) (editor.Config, error) {
	rules, err := selectRules(opt.filename, opt.lang)
	if err != nil {
		return editor.Config{}, err
	}
	style, err := editor.ThemeStyle(opt.theme)
	if err != nil {
		return editor.Config{}, err
	}
	return editor.Config{
		Filename:     opt.filename,
		Lines:        lines,
		TabWidth:     opt.tabWidth,
		Rules:        rules,
		ShowLineNums: !opt.noLineNums,
		Style:        style,
		KeyMap:       editor.DefaultKeyMap(),
		Saver:        saveFile,
		OnChange: func(ev editor.ChangeEvent) {
			slog.Debug("edit", "key", ev.Key, "row", ev.Cursor.Row, "col", ev.Cursor.Col, "rows", ev.Rows, "dirty", ev.Dirty)
		},
		Version: scribe.Version(),
	}, nil
}

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

// run starts the editor reading keys from in and drawing to out.
func run(args []string, in, out *os.File, stderr io.Writer) error {
	opt, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opt.version {
		fmt.Fprintln(out, scribe.Banner())
		return nil
	}
	if opt.theme == "help" {
		for _, name := range editor.Themes() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	closer, err := setupLogging(opt.logPath, opt.logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	if !term.IsTerminal(int(in.Fd())) {
		return errors.New("input is not a terminal")
	}

	lines, err := loadLines(opt.filename)
	if err != nil {
		return err
	}
	cfg, err := newConfig(opt, lines)
	if err != nil {
		return err
	}
	slog.Info("starting", "file", opt.filename, "rows", len(lines), "filetype", syntax.FileType(cfg.Rules, opt.filename))

	p := tea.NewProgram(model{editor: editor.New(cfg)},
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = os.Stderr.WriteString("scribe: " + err.Error() + "\n")
		os.Exit(1)
	}
}
