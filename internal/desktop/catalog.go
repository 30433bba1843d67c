package desktop

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Catalog is the immutable set of visible applications found at load time.
// Entries keep directory scan order; nothing is de-duplicated, so the same
// application can appear once per directory that provides it.
type Catalog struct {
	dirs    []string
	entries []Entry
	logger  hclog.Logger
}

// Load scans dirs in order and parses every *.desktop file in each.
// Missing directories, unreadable files and filtered entries are skipped.
func Load(dirs []string, logger hclog.Logger) *Catalog {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	c := &Catalog{
		dirs:   append([]string(nil), dirs...),
		logger: logger,
	}

	for _, dir := range c.dirs {
		c.scanDirectory(dir)
	}

	logger.Debug("desktop catalog loaded", "dirs", len(c.dirs), "entries", len(c.entries))
	return c
}

// NewCatalog builds a catalog from already parsed entries. Direct lookups
// probe dirs.
func NewCatalog(dirs []string, entries ...Entry) *Catalog {
	return &Catalog{
		dirs:    append([]string(nil), dirs...),
		entries: append([]Entry(nil), entries...),
		logger:  hclog.NewNullLogger(),
	}
}

func (c *Catalog) scanDirectory(dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Debug("skipping application directory", "dir", dir, "error", err)
		}
		return
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), Extension) {
			continue
		}

		path := filepath.Join(dir, file.Name())
		entry, err := ParseFile(path)
		if err != nil {
			c.logger.Trace("skipping desktop entry", "error", err)
			continue
		}
		c.entries = append(c.entries, entry)
	}
}

// Entries returns the catalog entries in scan order. Callers must not modify
// the returned slice.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Dirs returns the directories the catalog was built from, in priority order.
func (c *Catalog) Dirs() []string {
	return c.dirs
}

// LookupIcon returns the icon of the application whose desktop file is
// named <id>.desktop (id is lowercased). The first directory containing such
// a file decides: if that file yields no visible application the result is
// FallbackIcon and later directories are not consulted.
func (c *Catalog) LookupIcon(id string) string {
	name := strings.ToLower(id) + Extension

	for _, dir := range c.dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		entry, err := ParseFile(path)
		if err != nil {
			c.logger.Trace("direct lookup found unusable entry", "error", err)
			return FallbackIcon
		}
		return entry.Icon
	}

	return FallbackIcon
}
