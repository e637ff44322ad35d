package syntax

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Detect names the language of filename for display when no rule table
// matches. It returns "" when the language is unknown.
func Detect(filename string) string {
	if filename == "" {
		return ""
	}
	base := filepath.Base(filename)
	if lang, _ := enry.GetLanguageByFilename(base); lang != "" {
		return lang
	}
	if lang, _ := enry.GetLanguageByExtension(base); lang != "" {
		return lang
	}
	return ""
}

// FileType returns the label shown for filename: the matching table name,
// else the detected language, else "no ft".
func FileType(r *Rules, filename string) string {
	if r != nil {
		return r.Name
	}
	if lang := Detect(filename); lang != "" {
		return lang
	}
	return "no ft"
}
