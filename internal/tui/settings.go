package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/esmon-go/internal/model"
)

// SettingsFormModel manages the state of the refresh settings overlay:
// an auto-refresh toggle and an interval field.
type SettingsFormModel struct {
	autoRefresh  bool
	input        textinput.Model
	focusedField int    // 0 = auto-refresh toggle, 1 = interval input
	errMsg       string // inline validation message
	submitted    bool   // set by enter/ctrl+s; cleared by parent after handling
	cancelled    bool   // set by esc; cleared by parent after handling
}

// newSettingsForm builds the overlay pre-filled from the current settings.
// An invalid persisted interval is shown as typed, matching what was stored.
func newSettingsForm(s model.RefreshSettings) SettingsFormModel {
	ti := textinput.New()
	ti.CharLimit = 6
	ti.SetValue(strconv.Itoa(s.IntervalSeconds))

	return SettingsFormModel{
		autoRefresh: s.AutoRefresh,
		input:       ti,
	}
}

// intervalValue parses the interval field.
func (m SettingsFormModel) intervalValue() (int, error) {
	return strconv.Atoi(strings.TrimSpace(m.input.Value()))
}

// Update handles keyboard input for the settings form.
// Enter/ctrl+s sets m.submitted; esc sets m.cancelled (parent checks both).
// ↑/↓ and Tab move between the two fields; space toggles auto-refresh.
func (m SettingsFormModel) Update(msg tea.KeyMsg) (SettingsFormModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelled = true
		return m, nil

	case "enter", "ctrl+s":
		m.submitted = true
		return m, nil

	case "up", "down", "tab", "shift+tab":
		if m.focusedField == 0 {
			m.focusedField = 1
			m.input.Focus()
		} else {
			m.focusedField = 0
			m.input.Blur()
		}
		return m, nil

	case " ":
		if m.focusedField == 0 {
			m.autoRefresh = !m.autoRefresh
			return m, nil
		}
	}

	if m.focusedField == 1 {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// renderSettingsForm renders the settings overlay body.
func renderSettingsForm(app *App) string {
	form := app.settingsForm

	toggle := "[ ]"
	if form.autoRefresh {
		toggle = "[x]"
	}
	toggleLine := fmt.Sprintf("  %s Auto-refresh", toggle)
	if form.focusedField == 0 {
		toggleLine += StyleDim.Render("   (space to toggle)")
	}

	intervalLine := fmt.Sprintf("  %-14s %s", "Interval (s)", form.input.View())
	intervalLine += StyleDim.Render(fmt.Sprintf("   minimum %d", model.MinRefreshIntervalSeconds))

	lines := []string{
		"",
		" " + StyleTableHeader.Render("Refresh Settings"),
		"",
		toggleLine,
		intervalLine,
		"",
		"  " + StyleDim.Render("enter: save  tab: switch field  esc: cancel"),
	}

	if form.errMsg != "" {
		lines = append(lines, "", "  "+StyleError.Render(form.errMsg))
	}

	return strings.Join(lines, "\n")
}
