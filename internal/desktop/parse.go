package desktop

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
)

// MainSection is the group every desktop entry file must contain.
const MainSection = "Desktop Entry"

// Reasons an otherwise readable file contributes no entry.
var (
	ErrNoMainSection  = fmt.Errorf("no [%s] section: %w", MainSection, hwerrors.ErrParse)
	ErrNotApplication = fmt.Errorf("type is not Application: %w", hwerrors.ErrInvalid)
	ErrNoDisplay      = fmt.Errorf("entry is hidden by NoDisplay: %w", hwerrors.ErrInvalid)
)

// KeyValue is one key=value line.
type KeyValue struct {
	Key   string
	Value string
}

// Section is a named group of key=value lines in file order.
type Section struct {
	Name  string
	Pairs []KeyValue
}

// Map returns the section's pairs as a map. A repeated key keeps its last value.
func (s Section) Map() map[string]string {
	m := make(map[string]string, len(s.Pairs))
	for _, kv := range s.Pairs {
		m[kv.Key] = kv.Value
	}
	return m
}

// ParseSections splits r into sections with a single pass. A line starting
// with '[' opens a new section; every other line belongs to the most recently
// opened one. Lines before the first header, blank lines, comments and lines
// without '=' are dropped.
func ParseSections(r io.Reader) ([]Section, error) {
	var sections []Section
	current := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(line, "[") {
			sections = append(sections, Section{Name: headerName(line)})
			current = len(sections) - 1
			continue
		}

		if current < 0 {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		sections[current].Pairs = append(sections[current].Pairs, KeyValue{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", hwerrors.ErrIO, err)
	}

	return sections, nil
}

// headerName returns the text between '[' and the last ']' of a header line.
// A header without a closing bracket keeps everything after '['.
func headerName(line string) string {
	name := strings.TrimPrefix(line, "[")
	if i := strings.LastIndex(name, "]"); i >= 0 {
		name = name[:i]
	}
	return name
}

// Parse reads one desktop entry file body and returns the visible
// application it describes. The error explains why nothing was produced.
func Parse(r io.Reader) (Entry, error) {
	sections, err := ParseSections(r)
	if err != nil {
		return Entry{}, err
	}

	for _, section := range sections {
		if section.Name == MainSection {
			return fromKeys(section.Map())
		}
	}

	return Entry{}, ErrNoMainSection
}

// ParseFile reads and parses path. Errors are wrapped in *errors.EntryError.
func ParseFile(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, &hwerrors.EntryError{Path: path, Err: fmt.Errorf("%w: %v", hwerrors.ErrIO, err)}
	}
	defer f.Close()

	entry, err := Parse(f)
	if err != nil {
		return Entry{}, &hwerrors.EntryError{Path: path, Err: err}
	}
	entry.Source = path
	return entry, nil
}

func fromKeys(keys map[string]string) (Entry, error) {
	typ, ok := keys["Type"]
	if !ok {
		return Entry{}, missingKey("Type")
	}
	if typ != "Application" {
		return Entry{}, ErrNotApplication
	}

	if noDisplay, ok := keys["NoDisplay"]; ok && !isFalse(noDisplay) {
		return Entry{}, ErrNoDisplay
	}

	exec, ok := keys["Exec"]
	if !ok {
		return Entry{}, missingKey("Exec")
	}
	name, ok := keys["Name"]
	if !ok {
		return Entry{}, missingKey("Name")
	}

	icon, ok := keys["Icon"]
	if !ok {
		icon = FallbackIcon
	}

	return Entry{
		Exec:           StripFieldCodes(exec),
		Name:           name,
		Description:    keys["Comment"],
		Icon:           icon,
		StartupWMClass: keys["StartupWMClass"],
		Keywords:       splitList(keys["Keywords"]),
		Path:           keys["Path"],
		Terminal:       strings.ToLower(keys["Terminal"]) == "true",
	}, nil
}

// isFalse reports whether a boolean value is literally "false". Anything
// else, including values that do not parse, counts as true.
func isFalse(v string) bool {
	return v == "false"
}

// splitList splits a ';'-separated string list, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ";") {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func missingKey(key string) error {
	return fmt.Errorf("missing required key %s: %w", key, hwerrors.ErrInvalid)
}
