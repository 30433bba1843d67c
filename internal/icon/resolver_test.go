package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/hyprwin/internal/desktop"
	"github.com/chazuruo/hyprwin/internal/proc"
)

func catalogOf(entries ...desktop.Entry) *desktop.Catalog {
	return desktop.NewCatalog(nil, entries...)
}

func TestResolve_ExactClassBeatsSubstring(t *testing.T) {
	catalog := catalogOf(
		desktop.Entry{Name: "Foo Manager", Icon: "by-name", Exec: "foomgr"},
		desktop.Entry{Name: "Something", Icon: "by-class", StartupWMClass: "Foo", Exec: "something"},
	)
	r := NewResolver(catalog, nil, nil)

	res := r.Resolve("Foo", 1)
	assert.Equal(t, "by-class", res.Icon)
	assert.Equal(t, SourceWMClass, res.Source)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Something", res.Entry.Name)
}

func TestResolve_ExactClassIsCaseSensitive(t *testing.T) {
	catalog := catalogOf(
		desktop.Entry{Name: "Other", Icon: "by-class", StartupWMClass: "Foo"},
		desktop.Entry{Name: "the foo app", Icon: "by-name"},
	)
	r := NewResolver(catalog, nil, nil)

	res := r.Resolve("foo", 1)
	assert.Equal(t, "by-name", res.Icon)
	assert.Equal(t, SourceName, res.Source)
}

func TestResolve_SubstringFirstInOrderWins(t *testing.T) {
	catalog := catalogOf(
		desktop.Entry{Name: "Firefox Developer Edition", Icon: "firefox-dev"},
		desktop.Entry{Name: "Firefox", Icon: "firefox"},
	)
	r := NewResolver(catalog, nil, nil)

	assert.Equal(t, "firefox-dev", r.Icon("FIREFOX", 1))
}

func TestResolve_ProcessName(t *testing.T) {
	catalog := catalogOf(
		desktop.Entry{Name: "Terminal", Icon: "term", Exec: "alacritty --class x"},
		desktop.Entry{Name: "Code", Icon: "vscode", Exec: "/usr/bin/code --unity-launch "},
	)
	r := NewResolver(catalog, proc.Static{4242: "code"}, nil)

	res := r.Resolve("Code-oss-window", 4242)
	assert.Equal(t, "vscode", res.Icon)
	assert.Equal(t, SourceProcess, res.Source)
}

func TestResolve_ProcessLookupFailureFallsThrough(t *testing.T) {
	catalog := catalogOf(desktop.Entry{Name: "Code", Icon: "vscode", Exec: "code"})
	r := NewResolver(catalog, proc.Static{}, nil)

	res := r.Resolve("jetbrains-idea", 99)
	assert.Equal(t, "jetbrains-idea", res.Icon)
	assert.Equal(t, SourceClass, res.Source)
	assert.Nil(t, res.Entry)
}

func TestResolve_ClassFallback(t *testing.T) {
	r := NewResolver(catalogOf(), nil, nil)
	assert.Equal(t, "org.gnome.Nautilus", r.Icon("org.gnome.Nautilus", 10))
}

func TestResolve_NilCatalog(t *testing.T) {
	r := NewResolver(nil, proc.Static{1: "x"}, nil)
	assert.Equal(t, "kitty", r.Icon("kitty", 1))
}

func TestResolve_EmptyClassDoesNotMatchEveryName(t *testing.T) {
	catalog := catalogOf(
		desktop.Entry{Name: "Anything", Icon: "anything"},
		desktop.Entry{Name: "Blank", Icon: "blank-class"},
	)
	r := NewResolver(catalog, nil, nil)

	res := r.Resolve("", 0)
	assert.Equal(t, SourceClass, res.Source)
	assert.Equal(t, "", res.Icon)
}

func TestResolve_UnicodeCaseFolding(t *testing.T) {
	catalog := catalogOf(desktop.Entry{Name: "ÜBERSICHT", Icon: "uebersicht"})
	r := NewResolver(catalog, nil, nil)

	assert.Equal(t, "uebersicht", r.Icon("übersicht", 1))
}
