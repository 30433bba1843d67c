// Package tui provides Bubble Tea models for terminal UI interactions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chazuruo/hyprwin/internal/plugin"
	"github.com/chazuruo/hyprwin/internal/window"
)

// Session is the part of a plugin session the picker drives.
type Session interface {
	Info() plugin.Info
	GetMatches(query string) []plugin.Match
	Snapshot() *window.Snapshot
}

// PickerModel is a Bubble Tea model that plays the launcher host: every
// keystroke re-queries the session and Enter selects the highlighted window.
type PickerModel struct {
	// Session answers queries.
	Session Session

	// Results is the current match list.
	Results []plugin.Match

	// cursor is the current cursor position in the results list.
	cursor int

	// SearchInput is the text input for the query.
	SearchInput textinput.Model

	// ShowPreview controls whether to show the window details pane.
	ShowPreview bool

	// Quit indicates whether the user quit without selecting.
	Quit bool

	// Confirmed indicates whether the user confirmed selection.
	Confirmed bool

	// Selected is the chosen match.
	Selected *plugin.Match

	// styles
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	headerStyle   lipgloss.Style
	metadataStyle lipgloss.Style
	iconStyle     lipgloss.Style
}

// NewPickerModel creates a picker over session.
func NewPickerModel(session Session) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Search windows..."
	ti.Focus()

	return PickerModel{
		Session:     session,
		SearchInput: ti,
		ShowPreview: true,
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true),
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true),
		metadataStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		iconStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			if len(m.Results) > 0 {
				m.Confirmed = true
				selected := m.Results[m.cursor]
				m.Selected = &selected
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.Results)-1 {
				m.cursor++
			}
			return m, nil

		case "tab":
			m.ShowPreview = !m.ShowPreview
			return m, nil
		}
	}

	var cmd tea.Cmd
	oldQuery := m.SearchInput.Value()
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	if m.SearchInput.Value() != oldQuery {
		m.PerformSearch()
	}

	return m, cmd
}

// PerformSearch re-queries the session with the current input.
func (m *PickerModel) PerformSearch() {
	m.Results = m.Session.GetMatches(m.SearchInput.Value())

	if m.cursor >= len(m.Results) {
		m.cursor = max(0, len(m.Results)-1)
	}
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.headerStyle.Render(m.Session.Info().Name))
	b.WriteString("\n\n  ")
	b.WriteString(m.helpText())
	b.WriteString("\n\n")

	left := m.renderResultsColumn(50)
	if m.ShowPreview {
		left = lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderPreviewColumn(40))
	}
	b.WriteString(left)
	b.WriteString("\n")

	return b.String()
}

func (m PickerModel) renderResultsColumn(width int) string {
	var b strings.Builder

	b.WriteString("  > ")
	b.WriteString(m.SearchInput.View())
	b.WriteString("\n\n")

	if len(m.Results) == 0 {
		if m.SearchInput.Value() == "" {
			b.WriteString(m.metadataStyle.Render(
				fmt.Sprintf("  %d window(s) open", m.Session.Snapshot().Len())))
		} else {
			b.WriteString("  (no matches)")
		}
	}

	for i, r := range m.Results {
		style := m.normalStyle
		prefix := "  "
		if i == m.cursor {
			style = m.selectedStyle
			prefix = "> "
		}

		title := r.Title
		if maxLen := width - 8; len(title) > maxLen {
			title = title[:maxLen-3] + "..."
		}

		b.WriteString(style.Render(prefix + title))
		b.WriteString("\n")
		if r.Icon != "" {
			b.WriteString("    ")
			b.WriteString(m.iconStyle.Render(r.Icon))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

func (m PickerModel) renderPreviewColumn(width int) string {
	if len(m.Results) == 0 {
		return ""
	}

	w, ok := m.Session.Snapshot().ByID(m.Results[m.cursor].ID)
	if !ok {
		return ""
	}

	var b strings.Builder
	field := func(label, value string) {
		b.WriteString("  " + label + ":\n")
		b.WriteString("    " + m.metadataStyle.Render(value) + "\n")
	}

	field("Class", w.Class)
	field("Address", w.Address)
	field("PID", fmt.Sprintf("%d", w.PID))
	if icon := m.Results[m.cursor].Icon; icon != "" {
		field("Icon", icon)
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

func (m PickerModel) helpText() string {
	return m.metadataStyle.Render(strings.Join([]string{
		"[Enter] Focus",
		"[↑/↓] Move",
		"[Tab] Details",
		"[Esc] Quit",
	}, " • "))
}

// DidQuit returns true if the user quit without selecting.
func (m PickerModel) DidQuit() bool {
	return m.Quit
}

// DidConfirm returns true if the user confirmed selection.
func (m PickerModel) DidConfirm() bool {
	return m.Confirmed
}
