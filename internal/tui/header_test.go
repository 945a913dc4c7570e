package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/esmon-go/internal/client"
	"github.com/dm/esmon-go/internal/engine"
	"github.com/dm/esmon-go/internal/store"
)

// newFailingHealthApp builds an App whose cluster health fetch always fails,
// then runs one refresh cycle so the failure is recorded.
func newFailingHealthApp(t *testing.T, errMsg string) *App {
	t.Helper()
	mc := &tuiMockClient{
		healthFn: func(context.Context) (*client.ClusterHealth, error) {
			return nil, errors.New(errMsg)
		},
	}
	ctrl := engine.NewController(mc, store.NewMemStore())
	t.Cleanup(ctrl.Close)

	_, err := ctrl.RefreshAll(context.Background())
	require.NoError(t, err)

	return NewApp(ctrl, "http://localhost:9200", nil)
}

func TestRenderHeader_ConnectingState(t *testing.T) {
	app := newTestApp(t)
	app.width = 100
	app.fetching = false

	out := stripANSI(renderHeader(app))
	assert.Contains(t, out, "Connecting to http://localhost:9200...")
}

func TestRenderHeader_ConnectedShowsClusterAndStatus(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.telemetry = makeFixtureTelemetry()
	app.fetching = false

	out := stripANSI(renderHeader(app))
	assert.Contains(t, out, "test-cluster")
	assert.Contains(t, out, "● GREEN")
	assert.Contains(t, out, "Auto: off")
}

func TestRenderHeader_AutoRefreshInterval(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.telemetry = makeFixtureTelemetry()
	app.fetching = false
	app.ctrl.SetAutoRefresh(true)
	app.ctrl.SetIntervalSeconds(45)

	out := stripANSI(renderHeader(app))
	assert.Contains(t, out, "Auto: 45s")
}

func TestRenderHeader_FetchingOverridesRight(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.telemetry = makeFixtureTelemetry()
	app.fetching = true

	out := stripANSI(renderHeader(app))
	assert.Contains(t, out, "Refreshing...")
	assert.NotContains(t, out, "Auto:")
}

// TestRenderHeader_DisconnectedState verifies the header shows the failure
// when the very first health fetch has failed.
func TestRenderHeader_DisconnectedState(t *testing.T) {
	app := newFailingHealthApp(t, "connection refused")
	app.width = 140
	app.fetching = false

	out := stripANSI(renderHeader(app))
	assert.Contains(t, out, "● DISCONNECTED")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "Press r to retry")
}

func TestRenderTabs_HighlightsActive(t *testing.T) {
	app := newTestApp(t)
	app.activeView = viewRecovery

	out := stripANSI(renderTabs(app))
	assert.Contains(t, out, "1:Nodes")
	assert.Contains(t, out, "3:Recovery")
	assert.Contains(t, out, "5:Topology")
}

func TestRenderErrorBanner_Healthy(t *testing.T) {
	app := newTestApp(t)
	_, err := app.ctrl.RefreshAll(context.Background())
	require.NoError(t, err)

	assert.Empty(t, renderErrorBanner(app))
}

func TestRenderErrorBanner_ListsFailedKinds(t *testing.T) {
	app := newFailingHealthApp(t, "boom")

	out := stripANSI(renderErrorBanner(app))
	assert.Contains(t, out, "fetch failed: cluster health")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "(x to dismiss)")
	assert.NotContains(t, out, "node stats", "healthy kinds must not be listed")
}

// TestRenderErrorBanner_DismissAndReturn verifies x hides the banner for the
// current cycle and a later failing cycle brings it back.
func TestRenderErrorBanner_DismissAndReturn(t *testing.T) {
	app := newFailingHealthApp(t, "boom")
	require.NotEmpty(t, renderErrorBanner(app))

	newModel, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	app = newModel.(*App)
	assert.Empty(t, renderErrorBanner(app), "banner hidden after dismissal")

	// Next failing cycle stamps a new lastRefresh, so the banner returns.
	_, err := app.ctrl.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, renderErrorBanner(app), "a new failing cycle must resurface the banner")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "exactly-te", clip("exactly-te", 10))
	assert.Equal(t, "truncated-...", clip("truncated-here", 10))
	// Clip on rune boundaries so multi-byte error text is not mangled.
	assert.Equal(t, "señal ...", clip("señal perdida", 6))
}
