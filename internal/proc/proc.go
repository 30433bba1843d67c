// Package proc looks up running processes by pid.
package proc

import (
	"fmt"

	ps "github.com/mitchellh/go-ps"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
)

// Namer returns the short name of a live process.
type Namer interface {
	Name(pid int) (string, error)
}

// Table reads the operating system process table.
type Table struct{}

// NewTable returns a Namer backed by the process table.
func NewTable() Table {
	return Table{}
}

// Name returns the executable name (on Linux, the kernel's comm value) of
// pid. A process that has exited or cannot be inspected yields an error.
func (Table) Name(pid int) (string, error) {
	if pid <= 0 {
		return "", fmt.Errorf("pid %d: %w", pid, hwerrors.ErrInvalid)
	}

	p, err := ps.FindProcess(pid)
	if err != nil {
		return "", fmt.Errorf("pid %d: %w: %v", pid, hwerrors.ErrIO, err)
	}
	if p == nil {
		return "", fmt.Errorf("pid %d: %w", pid, hwerrors.ErrNotFound)
	}

	name := p.Executable()
	if name == "" {
		return "", fmt.Errorf("pid %d has no name: %w", pid, hwerrors.ErrNotFound)
	}
	return name, nil
}

// Static is a fixed pid -> name table.
type Static map[int]string

// Name implements Namer.
func (s Static) Name(pid int) (string, error) {
	if name, ok := s[pid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("pid %d: %w", pid, hwerrors.ErrNotFound)
}
