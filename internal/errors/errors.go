// Package errors provides a structured error type hierarchy for hyprwin.
//
// Almost nothing in hyprwin surfaces an error to the person typing a query:
// unreadable desktop files, a missing compositor, or a broken config file all
// degrade to empty or fallback results. The types here exist so that the
// degradation points can classify what went wrong before logging it.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - resource not found
//   - ErrInvalid - validation failed
//   - ErrIO - file I/O error
//   - ErrParse - malformed input (desktop file, JSON, TOML)
//   - ErrCommand - an external command failed or exited non-zero
//
// Wrapped error types (add context):
//   - EntryError{Path, Err} - desktop entry file errors
//   - CommandError{Op, Err, Cmd} - external command errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	return &errors.EntryError{Path: path, Err: errors.ErrParse}
//
//	if errors.IsCommand(err) {
//	    // hyprctl is unavailable, use an empty snapshot
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrParse indicates malformed input.
	ErrParse = baseError("parse error")

	// ErrCommand indicates an external command failed.
	ErrCommand = baseError("command failed")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// EntryError represents an error reading or parsing a desktop entry file.
type EntryError struct {
	// Path is the desktop entry file path.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("desktop entry %s: %s", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// CommandError represents an error running an external command.
type CommandError struct {
	// Op is the operation being performed (e.g., "clients", "focus").
	Op string
	// Err is the underlying error.
	Err error
	// Cmd is the full command line that was executed (optional).
	Cmd string
}

func (e *CommandError) Error() string {
	if e.Cmd != "" {
		return fmt.Sprintf("%s: %s\n  cmd: %s", e.Op, e.Err, e.Cmd)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsParse reports whether err is or wraps ErrParse.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsCommand reports whether err is or wraps ErrCommand.
func IsCommand(err error) bool {
	return errors.Is(err, ErrCommand)
}

// AsEntryError reports whether err can be typed as an *EntryError.
func AsEntryError(err error) (*EntryError, bool) {
	var ee *EntryError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// AsCommandError reports whether err can be typed as a *CommandError.
func AsCommandError(err error) (*CommandError, bool) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
