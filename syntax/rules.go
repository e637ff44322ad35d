package syntax

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// KeywordClass distinguishes the two keyword highlight classes.
type KeywordClass uint8

const (
	Primary KeywordClass = iota
	Secondary
)

// Keyword is one entry of a Rules keyword list.
type Keyword struct {
	Text  string
	Class KeywordClass
}

// Category returns the highlight category the keyword paints with.
func (k Keyword) Category() Category {
	if k.Class == Secondary {
		return KeywordSecondary
	}
	return KeywordPrimary
}

type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// Rules is an immutable highlight rule table for one file type.
//
// Tables are selected once per document and shared; callers must not mutate
// the slices they expose.
type Rules struct {
	Name string

	// FileMatch patterns starting with '.' match the filename extension,
	// everything else matches as a substring of the filename.
	FileMatch []string

	// Keywords are ordered longest first so the first hit is the longest match.
	Keywords []Keyword

	LineComment string
	BlockStart  string
	BlockEnd    string

	Flags Flags
}

func (r *Rules) hasBlockComments() bool {
	return r.BlockStart != "" && r.BlockEnd != ""
}

// NewRules builds a table, ordering keywords for longest-match lookup.
func NewRules(name string, fileMatch []string, primary, secondary []string, lineComment, blockStart, blockEnd string, flags Flags) *Rules {
	kws := make([]Keyword, 0, len(primary)+len(secondary))
	for _, kw := range primary {
		kws = append(kws, Keyword{Text: kw, Class: Primary})
	}
	for _, kw := range secondary {
		kws = append(kws, Keyword{Text: kw, Class: Secondary})
	}
	sort.SliceStable(kws, func(i, j int) bool {
		return len([]rune(kws[i].Text)) > len([]rune(kws[j].Text))
	})
	return &Rules{
		Name:        name,
		FileMatch:   append([]string(nil), fileMatch...),
		Keywords:    kws,
		LineComment: lineComment,
		BlockStart:  blockStart,
		BlockEnd:    blockEnd,
		Flags:       flags,
	}
}

var builtin = []*Rules{
	NewRules("c",
		[]string{".c", ".h", ".cpp", ".hpp", ".cc"},
		[]string{"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case", "default",
			"do", "goto", "sizeof", "const", "extern", "volatile", "#include", "#define"},
		[]string{"int", "long", "double", "float", "char", "unsigned", "signed", "void",
			"short", "auto", "bool", "size_t"},
		"//", "/*", "*/",
		HighlightNumbers|HighlightStrings,
	),
	NewRules("go",
		[]string{".go"},
		[]string{"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func", "go", "goto", "if", "import", "interface", "map",
			"package", "range", "return", "select", "struct", "switch", "type", "var",
			"nil", "true", "false", "iota"},
		[]string{"bool", "byte", "complex64", "complex128", "error", "float32", "float64",
			"int", "int8", "int16", "int32", "int64", "rune", "string", "uint", "uint8",
			"uint16", "uint32", "uint64", "uintptr", "any"},
		"//", "/*", "*/",
		HighlightNumbers|HighlightStrings,
	),
	NewRules("javascript",
		[]string{".js", ".mjs", ".jsx", ".ts", ".tsx"},
		[]string{"break", "case", "catch", "class", "const", "continue", "debugger",
			"default", "delete", "do", "else", "export", "extends", "finally", "for",
			"function", "if", "import", "in", "instanceof", "let", "new", "return",
			"super", "switch", "this", "throw", "try", "typeof", "var", "void", "while",
			"with", "yield", "async", "await"},
		[]string{"true", "false", "null", "undefined", "NaN", "Infinity"},
		"//", "/*", "*/",
		HighlightNumbers|HighlightStrings,
	),
	NewRules("rust",
		[]string{".rs"},
		[]string{"as", "break", "const", "continue", "crate", "else", "enum", "extern",
			"fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move", "mut",
			"pub", "ref", "return", "self", "Self", "static", "struct", "super", "trait",
			"type", "unsafe", "use", "where", "while"},
		[]string{"i8", "i16", "i32", "i64", "isize", "u8", "u16", "u32", "u64", "usize",
			"f32", "f64", "bool", "char", "str", "String", "Vec", "Option", "Result",
			"true", "false"},
		"//", "/*", "*/",
		HighlightNumbers|HighlightStrings,
	),
	NewRules("python",
		[]string{".py", ".pyw"},
		[]string{"and", "as", "assert", "break", "class", "continue", "def", "del", "elif",
			"else", "except", "finally", "for", "from", "global", "if", "import", "in",
			"is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield"},
		[]string{"None", "True", "False", "int", "str", "float", "list", "dict", "set",
			"tuple", "bytes", "self"},
		"#", "", "",
		HighlightNumbers|HighlightStrings,
	),
	NewRules("shell",
		[]string{".sh", ".bash", ".zsh", "bashrc", "zshrc", "profile"},
		[]string{"if", "then", "else", "elif", "fi", "for", "while", "until", "do", "done",
			"case", "esac", "in", "function", "return", "local", "export"},
		[]string{"echo", "cd", "exit", "set", "unset", "source", "test", "read"},
		"#", "", "",
		HighlightNumbers|HighlightStrings,
	),
}

// Builtin returns the built-in rule tables in selection order.
func Builtin() []*Rules {
	return append([]*Rules(nil), builtin...)
}

// Select picks the first built-in table matching filename, or nil when no
// table matches (highlighting disabled).
func Select(filename string) *Rules {
	return SelectFrom(builtin, filename)
}

// SelectFrom is Select over an explicit table list.
func SelectFrom(tables []*Rules, filename string) *Rules {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	for _, r := range tables {
		for _, pattern := range r.FileMatch {
			isExt := strings.HasPrefix(pattern, ".")
			if (isExt && ext == pattern) || (!isExt && strings.Contains(filename, pattern)) {
				slog.Debug("syntax rules selected", "filename", filename, "rules", r.Name)
				return r
			}
		}
	}
	return nil
}

// Lookup finds a built-in table by name, case-insensitively.
func Lookup(name string) *Rules {
	for _, r := range builtin {
		if strings.EqualFold(r.Name, name) {
			return r
		}
	}
	return nil
}
