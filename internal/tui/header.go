package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/esmon-go/internal/engine"
)

// renderHeader renders the top header bar.
//
// Layout:
//   left:   cluster name (or "Connecting to <URL>..." before the first cycle)
//   center: colored "● STATUS" indicator
//   right:  "Last: HH:MM:SS  Auto: 45s" (or "Auto: off"), "Refreshing..." while fetching
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	var left, center, right string

	if app.telemetry == nil || app.telemetry.Health == nil {
		left = "Connecting to " + app.baseURL + "..."
		if st := app.ctrl.Status(engine.KindHealth); st.State == engine.StateFailed && st.Err != nil {
			center = StyleError.Render("● DISCONNECTED  " + clip(st.Err.Error(), 40))
			right = StyleError.Render("Press r to retry")
		}
	} else {
		h := app.telemetry.Health
		left = h.ClusterName
		if left == "" {
			left = app.baseURL
		}

		status := strings.ToUpper(h.Status)
		if status == "" {
			status = "UNKNOWN"
		}
		center = StatusStyle(h.Status).Render("● " + status)

		lastStr := "never"
		if last := app.ctrl.LastRefresh(); !last.IsZero() {
			lastStr = last.Format("15:04:05")
		}
		auto := "off"
		if s := app.ctrl.Settings(); s.AutoRefresh {
			auto = fmt.Sprintf("%ds", app.ctrl.ActiveIntervalSeconds())
		}
		right = StyleDim.Render(fmt.Sprintf("Last: %s  Auto: %s", lastStr, auto))
	}

	if app.fetching {
		right = StyleDim.Render("Refreshing...")
	}

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// renderTabs renders the view switcher line, highlighting the active view.
func renderTabs(app *App) string {
	parts := make([]string, viewCount)
	for v := view(0); v < viewCount; v++ {
		label := fmt.Sprintf("%d:%s", int(v)+1, viewTitles[v])
		if v == app.activeView {
			parts[v] = StyleStatusGreen.Render(label)
		} else {
			parts[v] = StyleDim.Render(label)
		}
	}
	return " " + strings.Join(parts, "  ")
}

// renderErrorBanner renders one dismissible line summarizing failed
// telemetry kinds, or "" when everything is healthy or the banner was
// dismissed for the current cycle.
func renderErrorBanner(app *App) string {
	if app.errorsDismissedFor.Equal(app.ctrl.LastRefresh()) && !app.errorsDismissedFor.IsZero() {
		return ""
	}

	statuses := app.ctrl.Statuses()
	var failed []string
	var firstErr error
	for _, k := range engine.Kinds {
		if st := statuses[k]; st.State == engine.StateFailed {
			failed = append(failed, string(k))
			if firstErr == nil {
				firstErr = st.Err
			}
		}
	}
	if len(failed) == 0 {
		return ""
	}

	msg := fmt.Sprintf(" fetch failed: %s", strings.Join(failed, ", "))
	if firstErr != nil {
		msg += ": " + clip(firstErr.Error(), 60)
	}
	return StyleError.Render(msg) + StyleDim.Render("  (x to dismiss)")
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
