package tui

import (
	"fmt"
	"strings"

	"github.com/dm/esmon-go/internal/format"
)

var snapshotColumns = []columnDef{
	{Title: "Snapshot", Width: 24},
	{Title: "Repository", Width: 14},
	{Title: "State", Width: 10},
	{Title: "Shards", Width: 11, Right: true},
	{Title: "Failed", Width: 6, Right: true},
	{Title: "Size", Width: 10, Right: true},
	{Title: "Duration", Width: 9, Right: true},
	{Title: "Indices", Width: 7, Right: true},
}

// renderSnapshotsView renders the running snapshots table.
func renderSnapshotsView(app *App) string {
	if app.telemetry == nil {
		return "\n  No snapshot data yet."
	}
	snapshots := app.telemetry.Snapshots
	if len(snapshots) == 0 {
		return "\n  No snapshots running."
	}

	app.pages[viewSnapshots] = clampPage(app.pages[viewSnapshots], len(snapshots))
	start, end := pageBounds(app.pages[viewSnapshots], len(snapshots))

	var b strings.Builder
	b.WriteString(renderTableTitle("Snapshots", app.pages[viewSnapshots], len(snapshots)))
	b.WriteString("\n")
	b.WriteString(renderColumns(snapshotColumns))
	b.WriteString("\n")

	for i := start; i < end; i++ {
		s := snapshots[i]
		cells := []string{
			s.Name,
			s.Repository,
			s.State,
			fmt.Sprintf("%d/%d", s.Shards.Done, s.Shards.Total),
			fmt.Sprintf("%d", s.Shards.Failed),
			format.Bytes(s.Stats.TotalBytes),
			format.Millis(s.Stats.DurationMillis),
			fmt.Sprintf("%d", len(s.Indices)),
		}
		b.WriteString(renderRow(snapshotColumns, cells, i%2 == 1))
		b.WriteString("\n")
	}

	return b.String()
}
