package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/esmon-go/internal/layout"
)

// renderTopologyView renders the zone/role/host arrangement produced by the
// layout engine as bordered zone columns placed side by side, mirroring the
// computed geometry: zones left to right, role blocks stacked inside each.
func renderTopologyView(app *App) string {
	if app.telemetry == nil || len(app.telemetry.Nodes) == 0 {
		return "\n  No node data yet."
	}

	l := layout.Compute(app.telemetry.Nodes)
	if len(l.Zones) == 0 {
		return "\n  No nodes with roles to lay out."
	}

	boxes := make([]string, 0, len(l.Zones)*2)
	for i, z := range l.Zones {
		if i > 0 {
			boxes = append(boxes, " ")
		}
		boxes = append(boxes, renderZone(z))
	}

	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// renderZone renders one zone column: zone label, then each role block with
// its hosts in the engine's (sorted, deterministic) order.
func renderZone(z layout.ZoneBlock) string {
	var b strings.Builder
	b.WriteString(StyleZoneTitle.Render(z.Name))

	for _, role := range z.Roles {
		b.WriteString("\n\n")
		b.WriteString(StyleRoleTitle.Render(fmt.Sprintf("%s (%d)", role.Role, len(role.Hosts))))
		for _, host := range role.Hosts {
			b.WriteString("\n  ")
			b.WriteString(host.Name)
		}
	}

	return StyleZoneBox.Render(b.String())
}
