package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/esmon-go/internal/format"
)

// renderClusterView renders the health and cluster-stats cards side by side,
// with the indices summary underneath.
func renderClusterView(app *App) string {
	if app.telemetry == nil {
		return "\n  No cluster data yet."
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		renderHealthCard(app), " ", renderStatsCard(app))
	return "\n" + top + "\n" + renderIndicesCard(app)
}

func renderHealthCard(app *App) string {
	h := app.telemetry.Health
	if h == nil {
		return StyleCard.Render("Health\n\nunavailable")
	}

	lines := []string{
		StyleTableHeader.Render("Health"),
		fmt.Sprintf("Status        %s", StatusStyle(h.Status).Render(h.Status)),
		fmt.Sprintf("Nodes         %d (%d data)", h.NumberOfNodes, h.NumberOfDataNodes),
		fmt.Sprintf("Active shards %d (%d primary)", h.ActiveShards, h.ActivePrimaryShards),
		fmt.Sprintf("Relocating    %d", h.RelocatingShards),
		fmt.Sprintf("Initializing  %d", h.InitializingShards),
		fmt.Sprintf("Unassigned    %d", h.UnassignedShards),
		fmt.Sprintf("Active %%      %s", format.Percent(h.ActiveShardsPercent)),
	}
	return StyleCard.Render(strings.Join(lines, "\n"))
}

func renderStatsCard(app *App) string {
	s := app.telemetry.Stats
	if s == nil {
		return StyleCard.Render("Cluster\n\nunavailable")
	}

	versions := strings.Join(s.Versions, ", ")
	if versions == "" {
		versions = "-"
	}
	lines := []string{
		StyleTableHeader.Render("Cluster"),
		fmt.Sprintf("Nodes    %d total / %d master / %d data", s.Nodes.Total, s.Nodes.Master, s.Nodes.Data),
		fmt.Sprintf("         %d ingest / %d coordinating", s.Nodes.Ingest, s.Nodes.CoordinatingOnly),
		fmt.Sprintf("Heap     %s of %s (%s)",
			format.Bytes(s.JVMHeap.Used), format.Bytes(s.JVMHeap.Total), format.Percent(s.JVMHeap.Percent)),
		fmt.Sprintf("Disk     %s of %s (%s)",
			format.Bytes(s.FS.Used), format.Bytes(s.FS.Total), format.Percent(s.FS.Percent)),
		fmt.Sprintf("Versions %s", versions),
		fmt.Sprintf("Uptime   %s", format.Millis(s.MaxUptimeMillis)),
	}
	return StyleCard.Render(strings.Join(lines, "\n"))
}

func renderIndicesCard(app *App) string {
	s := app.telemetry.Stats
	if s == nil {
		return ""
	}

	idx := s.Indices
	lines := []string{
		StyleTableHeader.Render("Indices"),
		fmt.Sprintf("Indices %s   Shards %s (%s primary, replication %.1f)",
			format.Number(int64(idx.Count)), format.Number(int64(idx.Shards)),
			format.Number(int64(idx.PrimaryShards)), idx.Replication),
		fmt.Sprintf("Docs %s   Store %s   Segments %s",
			format.Number(idx.Docs), format.Bytes(idx.StoreSizeBytes), format.Number(idx.Segments)),
	}
	return StyleCard.Render(strings.Join(lines, "\n"))
}
