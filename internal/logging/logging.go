// Package logging builds the operator-facing diagnostics logger.
//
// Diagnostics never reach the person typing a query. They go to stderr (or a
// configured writer) so that stdout stays free for results.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "warn"

// Options controls logger construction.
type Options struct {
	// Name is the root logger name.
	Name string
	// Level is one of trace, debug, info, warn, error, off.
	Level string
	// Output defaults to os.Stderr.
	Output io.Writer
	// JSON switches to JSON-formatted lines.
	JSON bool
}

// New creates a logger from opts. An unknown level falls back to DefaultLevel.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	name := opts.Name
	if name == "" {
		name = "hyprwin"
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		level = hclog.LevelFromString(DefaultLevel)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
	})
}

// ParseLevel converts a level name to an hclog level.
func ParseLevel(s string) (hclog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return hclog.LevelFromString(DefaultLevel), nil
	}
	if s == "off" {
		return hclog.Off, nil
	}
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level %q (want trace, debug, info, warn, error, off)", s)
	}
	return level, nil
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}

// Session derives a logger for one activation session. Every line it emits
// carries the same session id.
func Session(parent hclog.Logger) hclog.Logger {
	if parent == nil {
		parent = Discard()
	}
	return parent.Named("session").With("session", uuid.NewString())
}
