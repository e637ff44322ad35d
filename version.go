// Package scribe holds the release metadata of the scribe editor.
package scribe

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version is the release number from the VERSION file, without a `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the one-line product string printed by --version and shown on
// an empty document.
func Banner() string {
	return "scribe editor -- version " + Version()
}
