// Package desktop discovers and parses freedesktop.org desktop entry files.
//
// A Catalog is built once per activation session by scanning the application
// directories in priority order. Files that cannot be read, that are
// malformed, or that describe something other than a visible application are
// skipped; a scan never fails as a whole.
package desktop

import "strings"

// FallbackIcon is the icon used when an entry has no Icon key, and the
// result of a direct lookup that finds nothing.
const FallbackIcon = "application-x-executable"

// Extension is the file extension of desktop entry files.
const Extension = ".desktop"

// FieldCodes are the Exec placeholders a desktop-aware launcher would expand.
// hyprwin never launches anything, so they are removed.
var FieldCodes = []string{
	"%f", "%F", "%u", "%U", "%d", "%D", "%n", "%N", "%i", "%c", "%k", "%v", "%m",
}

// Entry is one parsed, visible application.
type Entry struct {
	// Exec is the launch command with field codes removed.
	Exec string `json:"exec" yaml:"exec"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Description is the Comment key, if any.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Icon is the icon name or path; FallbackIcon when the file has none.
	Icon string `json:"icon" yaml:"icon"`

	// StartupWMClass is the window class hint used for exact matching.
	StartupWMClass string `json:"startup_wm_class,omitempty" yaml:"startup_wm_class,omitempty"`

	// Keywords are the search aliases in file order.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Path is the working directory override.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Terminal reports whether the app must run inside a terminal.
	Terminal bool `json:"terminal" yaml:"terminal"`

	// Source is the file the entry was parsed from.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// StripFieldCodes removes every field code from an Exec value.
// Each code in FieldCodes is replaced once across the whole string, in table
// order; surrounding text, including the spaces around a code, is kept.
func StripFieldCodes(exec string) string {
	for _, code := range FieldCodes {
		exec = strings.ReplaceAll(exec, code, "")
	}
	return exec
}
