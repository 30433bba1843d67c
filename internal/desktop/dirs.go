package desktop

import (
	"os"
	"path/filepath"
	"strings"
)

// SystemApplicationsDir is used when XDG_DATA_DIRS is unset or empty.
const SystemApplicationsDir = "/usr/share/applications"

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(key string) string

// SearchDirs returns the application directories in priority order:
// the user data directory first ($XDG_DATA_HOME/applications, else
// $HOME/.local/share/applications), then <dir>/applications for every entry
// of $XDG_DATA_DIRS, or SystemApplicationsDir when that variable is empty.
func SearchDirs(getenv Getenv) []string {
	var dirs []string

	if dataHome := getenv("XDG_DATA_HOME"); dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	} else if home := getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}

	var system []string
	for _, dir := range strings.Split(getenv("XDG_DATA_DIRS"), ":") {
		if dir != "" {
			system = append(system, filepath.Join(dir, "applications"))
		}
	}
	if len(system) == 0 {
		system = []string{SystemApplicationsDir}
	}

	return append(dirs, system...)
}

// DefaultSearchDirs returns SearchDirs for the current process environment.
func DefaultSearchDirs() []string {
	return SearchDirs(os.Getenv)
}
