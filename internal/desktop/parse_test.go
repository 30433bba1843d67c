package desktop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
)

func TestStripFieldCodes_EachCode(t *testing.T) {
	for _, code := range FieldCodes {
		t.Run(code, func(t *testing.T) {
			got := StripFieldCodes("app --open " + code + " --flag" + code)
			assert.Equal(t, "app --open  --flag", got)
			assert.NotContains(t, got, code)
		})
	}
}

func TestStripFieldCodes_AllCodesAndLiteralText(t *testing.T) {
	exec := "env FOO=bar /usr/bin/app " + strings.Join(FieldCodes, " ")
	got := StripFieldCodes(exec)

	assert.True(t, strings.HasPrefix(got, "env FOO=bar /usr/bin/app "))
	for _, code := range FieldCodes {
		assert.NotContains(t, got, code)
	}
	assert.Equal(t, "", strings.TrimSpace(strings.TrimPrefix(got, "env FOO=bar /usr/bin/app")))
}

func TestStripFieldCodes_NoCodes(t *testing.T) {
	assert.Equal(t, "firefox --new-window", StripFieldCodes("firefox --new-window"))
}

func TestParseSections_LinearScan(t *testing.T) {
	content := `# leading comment
Orphan=dropped
[Desktop Entry]
Name=Files
Exec=nautilus
[Desktop Action new-window]
Name=New Window
Exec=nautilus --new-window
`
	sections, err := ParseSections(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, sections, 2)

	assert.Equal(t, "Desktop Entry", sections[0].Name)
	assert.Equal(t, []KeyValue{{"Name", "Files"}, {"Exec", "nautilus"}}, sections[0].Pairs)

	assert.Equal(t, "Desktop Action new-window", sections[1].Name)
	assert.Equal(t, "nautilus --new-window", sections[1].Map()["Exec"])
}

func TestParseSections_DuplicateKeyLastWins(t *testing.T) {
	sections, err := ParseSections(strings.NewReader("[Desktop Entry]\nName=First\nName=Second\n"))
	require.NoError(t, err)
	require.Len(t, sections, 1)

	assert.Len(t, sections[0].Pairs, 2)
	assert.Equal(t, "Second", sections[0].Map()["Name"])
}

func TestParseSections_ValueKeepsEquals(t *testing.T) {
	sections, err := ParseSections(strings.NewReader("[Desktop Entry]\r\nExec = env A=b app\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "env A=b app", sections[0].Map()["Exec"])
}

func TestParse_FullEntry(t *testing.T) {
	content := `[Desktop Entry]
Type=Application
Name=Firefox
Comment=Browse the web
Exec=/usr/lib/firefox/firefox %u
Icon=firefox
StartupWMClass=firefox
Keywords=Internet;WWW;Browser;
Path=/tmp
Terminal=False
Name[de]=Feuerfuchs
`
	entry, err := Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "Firefox", entry.Name)
	assert.Equal(t, "Browse the web", entry.Description)
	assert.Equal(t, "/usr/lib/firefox/firefox ", entry.Exec)
	assert.Equal(t, "firefox", entry.Icon)
	assert.Equal(t, "firefox", entry.StartupWMClass)
	assert.Equal(t, []string{"Internet", "WWW", "Browser"}, entry.Keywords)
	assert.Equal(t, "/tmp", entry.Path)
	assert.False(t, entry.Terminal)
}

func TestParse_Defaults(t *testing.T) {
	entry, err := Parse(strings.NewReader("[Desktop Entry]\nType=Application\nName=Tool\nExec=tool\nTerminal=TRUE\n"))
	require.NoError(t, err)

	assert.Equal(t, FallbackIcon, entry.Icon)
	assert.Empty(t, entry.Keywords)
	assert.Empty(t, entry.StartupWMClass)
	assert.True(t, entry.Terminal)
}

func TestParse_UsesOnlyMainSection(t *testing.T) {
	content := `[Desktop Action other]
Type=Application
Name=Action
Exec=action
[Desktop Entry]
Type=Application
Name=Main
Exec=main
`
	entry, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "Main", entry.Name)
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{"no main section", "[Something Else]\nType=Application\nName=X\nExec=x\n", ErrNoMainSection},
		{"empty file", "", ErrNoMainSection},
		{"link type", "[Desktop Entry]\nType=Link\nName=X\nExec=x\nURL=https://example.com\n", ErrNotApplication},
		{"directory type", "[Desktop Entry]\nType=Directory\nName=X\n", ErrNotApplication},
		{"no display true", "[Desktop Entry]\nType=Application\nName=X\nExec=x\nNoDisplay=true\n", ErrNoDisplay},
		{"no display garbage", "[Desktop Entry]\nType=Application\nName=X\nExec=x\nNoDisplay=maybe\n", ErrNoDisplay},
		{"missing type", "[Desktop Entry]\nName=X\nExec=x\n", hwerrors.ErrInvalid},
		{"missing exec", "[Desktop Entry]\nType=Application\nName=X\n", hwerrors.ErrInvalid},
		{"missing name", "[Desktop Entry]\nType=Application\nExec=x\n", hwerrors.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestParse_NoDisplayFalseIsKept(t *testing.T) {
	entry, err := Parse(strings.NewReader("[Desktop Entry]\nType=Application\nName=X\nExec=x\nNoDisplay=false\n"))
	require.NoError(t, err)
	assert.Equal(t, "X", entry.Name)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("/nonexistent/app.desktop")
	require.Error(t, err)
	assert.True(t, hwerrors.IsIO(err))

	ee, ok := hwerrors.AsEntryError(err)
	require.True(t, ok)
	assert.Equal(t, "/nonexistent/app.desktop", ee.Path)
}
