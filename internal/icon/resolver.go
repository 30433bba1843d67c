// Package icon picks an icon name for an open window.
package icon

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chazuruo/hyprwin/internal/desktop"
	"github.com/chazuruo/hyprwin/internal/proc"
)

// Source names the step of the chain that produced an icon.
type Source string

const (
	SourceWMClass Source = "wm-class"
	SourceName    Source = "name"
	SourceProcess Source = "process"
	// SourceClass means no entry matched and the window class itself is
	// returned as a best guess. Icon themes often carry an icon named after
	// the class, so this is a heuristic rather than a failure.
	SourceClass Source = "class"
)

// Resolution is an icon together with how it was found.
type Resolution struct {
	Icon   string
	Source Source
	// Entry is the matched entry; nil for SourceClass.
	Entry *desktop.Entry
}

// Resolver runs the fallback chain against a catalog. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	catalog *desktop.Catalog
	procs   proc.Namer
	logger  hclog.Logger
}

// NewResolver creates a resolver. procs may be nil, which disables the
// process-name step.
func NewResolver(catalog *desktop.Catalog, procs proc.Namer, logger hclog.Logger) *Resolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Resolver{catalog: catalog, procs: procs, logger: logger}
}

// Icon returns the icon name for a window.
func (r *Resolver) Icon(class string, pid int) string {
	return r.Resolve(class, pid).Icon
}

// Resolve tries, in order:
//  1. an entry whose StartupWMClass equals class exactly
//  2. an entry whose lowercased Name contains the lowercased class
//  3. an entry whose Exec contains the short name of process pid
//  4. class itself
//
// Within each step the first entry in catalog order wins.
func (r *Resolver) Resolve(class string, pid int) Resolution {
	entries := r.entries()

	for i := range entries {
		if entries[i].StartupWMClass != "" && entries[i].StartupWMClass == class {
			return Resolution{Icon: entries[i].Icon, Source: SourceWMClass, Entry: &entries[i]}
		}
	}

	lower := cases.Lower(language.Und)
	if needle := lower.String(class); needle != "" {
		for i := range entries {
			if strings.Contains(lower.String(entries[i].Name), needle) {
				return Resolution{Icon: entries[i].Icon, Source: SourceName, Entry: &entries[i]}
			}
		}
	}

	if name := r.processName(pid); name != "" {
		for i := range entries {
			if strings.Contains(entries[i].Exec, name) {
				return Resolution{Icon: entries[i].Icon, Source: SourceProcess, Entry: &entries[i]}
			}
		}
	}

	return Resolution{Icon: class, Source: SourceClass}
}

func (r *Resolver) entries() []desktop.Entry {
	if r.catalog == nil {
		return nil
	}
	return r.catalog.Entries()
}

// processName returns "" when the process cannot be looked up.
func (r *Resolver) processName(pid int) string {
	if r.procs == nil {
		return ""
	}
	name, err := r.procs.Name(pid)
	if err != nil {
		r.logger.Trace("process lookup failed", "pid", pid, "error", err)
		return ""
	}
	return name
}
