// Package testutil provides helper functions for testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempDir creates a temporary directory and registers a cleanup function.
// The directory is automatically deleted when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("failed to cleanup temp dir %s: %v", dir, err)
		}
	})

	return dir
}

// WriteFile writes content to dir/name, creating dir if needed, and returns
// the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create dir %s: %v", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	return path
}

// App describes a minimal visible application for fixture files.
type App struct {
	Name           string
	Exec           string
	Icon           string
	StartupWMClass string
}

// DesktopFile renders app as a desktop entry file body.
func (a App) DesktopFile() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", a.Name)
	exec := a.Exec
	if exec == "" {
		exec = strings.ToLower(a.Name)
	}
	fmt.Fprintf(&b, "Exec=%s\n", exec)
	if a.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", a.Icon)
	}
	if a.StartupWMClass != "" {
		fmt.Fprintf(&b, "StartupWMClass=%s\n", a.StartupWMClass)
	}
	return b.String()
}

// WriteDesktopEntry writes app to dir/<id>.desktop and returns the path.
func WriteDesktopEntry(t *testing.T, dir, id string, app App) string {
	t.Helper()
	return WriteFile(t, dir, id+".desktop", app.DesktopFile())
}
