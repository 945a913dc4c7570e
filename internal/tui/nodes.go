package tui

import (
	"fmt"
	"strings"

	"github.com/dm/esmon-go/internal/engine"
	"github.com/dm/esmon-go/internal/format"
)

var nodeColumns = []columnDef{
	{Title: "Name", Width: 18},
	{Title: "Host", Width: 14},
	{Title: "Roles", Width: 20},
	{Title: "Zone", Width: 10},
	{Title: "CPU%", Width: 6, Right: true},
	{Title: "Mem%", Width: 6, Right: true},
	{Title: "Swap%", Width: 6, Right: true},
	{Title: "Disk%", Width: 6, Right: true},
	{Title: "Disk Used", Width: 18, Right: true},
}

// renderNodesView renders the per-node resource table plus, when expected
// node names are configured, the topology drift summary.
func renderNodesView(app *App) string {
	if app.telemetry == nil || len(app.telemetry.Nodes) == 0 {
		return "\n  No node data yet."
	}
	nodes := app.telemetry.Nodes

	app.pages[viewNodes] = clampPage(app.pages[viewNodes], len(nodes))
	start, end := pageBounds(app.pages[viewNodes], len(nodes))

	var b strings.Builder
	b.WriteString(renderTableTitle("Node Resources", app.pages[viewNodes], len(nodes)))
	b.WriteString("\n")
	b.WriteString(renderColumns(nodeColumns))
	b.WriteString("\n")

	for i := start; i < end; i++ {
		n := nodes[i]
		zone := n.Zone
		if zone == "" {
			zone = "-"
		}
		cells := []string{
			n.Name,
			n.Host,
			strings.Join(n.Roles, ","),
			zone,
			format.Percent(n.CPUPercent),
			format.Percent(n.Mem.Percent),
			format.Percent(n.Swap.Percent),
			format.Percent(n.FS.Percent),
			fmt.Sprintf("%s / %s", format.Bytes(n.FS.Used), format.Bytes(n.FS.Total)),
		}
		b.WriteString(renderRow(nodeColumns, cells, i%2 == 1))
		b.WriteString("\n")
	}

	if drift := renderDrift(app); drift != "" {
		b.WriteString("\n")
		b.WriteString(drift)
	}

	return b.String()
}

// renderDrift summarizes the mismatch between configured and observed node
// names. Returns "" when drift detection is disabled (no configured names)
// or the sets match.
func renderDrift(app *App) string {
	if len(app.expectedNodes) == 0 {
		return ""
	}
	diff := engine.NodeDifferences(app.expectedNodes, app.telemetry.Nodes)
	if diff.None() {
		return " " + StyleDim.Render("topology matches configured node list")
	}

	var lines []string
	if len(diff.Missing) > 0 {
		lines = append(lines, " "+StyleError.Render("missing nodes: "+strings.Join(diff.Missing, ", ")))
	}
	if len(diff.Extra) > 0 {
		lines = append(lines, " "+StyleWarn.Render("unexpected nodes: "+strings.Join(diff.Extra, ", ")))
	}
	return strings.Join(lines, "\n")
}
