package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/esmon-go/internal/engine"
	"github.com/dm/esmon-go/internal/model"
)

// view identifies one of the dashboard screens.
type view int

const (
	viewNodes view = iota
	viewCluster
	viewRecovery
	viewSnapshots
	viewTopology
	viewCount
)

// viewTitles in tab order, indexed by view.
var viewTitles = [viewCount]string{"Nodes", "Cluster", "Recovery", "Snapshots", "Topology"}

// App is the root Bubble Tea model for esmon.
type App struct {
	ctrl          *engine.Controller
	baseURL       string
	expectedNodes []string

	telemetry *model.Telemetry
	fetching  bool

	// Layout
	width, height int

	// UI state
	activeView   view
	pages        [viewCount]int
	showHelp     bool
	settingsOpen bool
	settingsForm SettingsFormModel

	// errorsDismissedFor suppresses the error banner for the cycle it was
	// dismissed in; the next failing cycle shows it again.
	errorsDismissedFor time.Time
}

// NewApp creates an App bound to the given controller. expectedNodes enables
// topology drift markers when non-empty.
func NewApp(ctrl *engine.Controller, baseURL string, expectedNodes []string) *App {
	return &App{
		ctrl:          ctrl,
		baseURL:       baseURL,
		expectedNodes: expectedNodes,
		fetching:      true, // Init always issues an immediate refresh
	}
}

// Init implements tea.Model. It arms the update listener and kicks off the
// first refresh.
func (app *App) Init() tea.Cmd {
	return tea.Batch(waitForTelemetry(app.ctrl), refreshNowCmd(app.ctrl))
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case TelemetryMsg:
		app.fetching = false
		app.telemetry = msg.Telemetry
		// Keep listening for the next cycle (scheduled or manual).
		return app, waitForTelemetry(app.ctrl)

	case RefreshRequestedMsg:
		return app, nil

	case tea.KeyMsg:
		if app.settingsOpen {
			return app.updateSettings(msg)
		}
		return app.updateMain(msg)
	}

	return app, nil
}

// updateMain handles keys on the dashboard screens.
func (app *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		app.ctrl.Close()
		return app, tea.Quit

	case key.Matches(msg, keys.Refresh):
		if app.fetching {
			return app, nil
		}
		app.fetching = true
		return app, refreshNowCmd(app.ctrl)

	case key.Matches(msg, keys.Tab):
		app.activeView = (app.activeView + 1) % viewCount

	case key.Matches(msg, keys.ShiftTab):
		app.activeView = (app.activeView + viewCount - 1) % viewCount

	case key.Matches(msg, keys.View1):
		app.activeView = viewNodes
	case key.Matches(msg, keys.View2):
		app.activeView = viewCluster
	case key.Matches(msg, keys.View3):
		app.activeView = viewRecovery
	case key.Matches(msg, keys.View4):
		app.activeView = viewSnapshots
	case key.Matches(msg, keys.View5):
		app.activeView = viewTopology

	case key.Matches(msg, keys.PrevPage):
		if app.pages[app.activeView] > 0 {
			app.pages[app.activeView]--
		}

	case key.Matches(msg, keys.NextPage):
		app.pages[app.activeView]++

	case key.Matches(msg, keys.Settings):
		app.settingsForm = newSettingsForm(app.ctrl.Settings())
		app.settingsOpen = true

	case key.Matches(msg, keys.Dismiss):
		app.errorsDismissedFor = app.ctrl.LastRefresh()

	case key.Matches(msg, keys.Help):
		app.showHelp = !app.showHelp
	}

	return app, nil
}

// updateSettings handles keys while the settings overlay is open.
func (app *App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	app.settingsForm, cmd = app.settingsForm.Update(msg)

	if app.settingsForm.cancelled {
		app.settingsOpen = false
		return app, nil
	}

	if app.settingsForm.submitted {
		app.settingsForm.submitted = false
		if app.applySettings() {
			app.settingsOpen = false
		}
	}

	return app, cmd
}

// applySettings validates and commits the settings form to the controller.
// Returns false (keeping the overlay open with an inline error) when the
// interval is not a number or below the minimum; the typed value is still
// persisted so the user sees it again next time.
func (app *App) applySettings() bool {
	n, parseErr := app.settingsForm.intervalValue()
	if parseErr != nil {
		app.settingsForm.errMsg = "interval must be a whole number of seconds"
		return false
	}

	app.ctrl.SetAutoRefresh(app.settingsForm.autoRefresh)
	if !app.ctrl.SetIntervalSeconds(n) {
		app.settingsForm.errMsg = "interval must be at least 30 seconds; keeping the previous schedule"
		return false
	}
	return true
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	var parts []string

	parts = append(parts, renderHeader(app))

	if banner := renderErrorBanner(app); banner != "" {
		parts = append(parts, banner)
	}

	if app.settingsOpen {
		parts = append(parts, renderSettingsForm(app))
	} else {
		parts = append(parts, renderTabs(app), app.renderActiveView())
	}

	parts = append(parts, renderFooter(app))
	return strings.Join(parts, "\n")
}

func (app *App) renderActiveView() string {
	switch app.activeView {
	case viewNodes:
		return renderNodesView(app)
	case viewCluster:
		return renderClusterView(app)
	case viewRecovery:
		return renderRecoveryView(app)
	case viewSnapshots:
		return renderSnapshotsView(app)
	case viewTopology:
		return renderTopologyView(app)
	default:
		return ""
	}
}

// waitForTelemetry blocks on the controller's update channel and converts
// the next completed cycle into a TelemetryMsg.
func waitForTelemetry(ctrl *engine.Controller) tea.Cmd {
	return func() tea.Msg {
		tel, ok := <-ctrl.Updates()
		if !ok {
			return nil
		}
		return TelemetryMsg{Telemetry: tel}
	}
}

// refreshNowCmd issues one refresh cycle. The result is delivered through
// the update channel, not the command's return value; a cycle already in
// flight makes this a no-op.
func refreshNowCmd(ctrl *engine.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, _ = ctrl.RefreshAll(ctx)
		return RefreshRequestedMsg{}
	}
}
