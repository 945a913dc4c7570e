package tui

import (
	"strconv"
	"strings"

	"github.com/dm/esmon-go/internal/format"
)

var recoveryColumns = []columnDef{
	{Title: "Index", Width: 20},
	{Title: "Shard", Width: 5, Right: true},
	{Title: "Stage", Width: 10},
	{Title: "Source", Width: 14},
	{Title: "Target", Width: 14},
	{Title: "Time", Width: 8, Right: true},
	{Title: "Files", Width: 8, Right: true},
	{Title: "Bytes", Width: 8, Right: true},
	{Title: "Translog", Width: 8, Right: true},
}

// renderRecoveryView renders the in-flight shard recoveries table.
func renderRecoveryView(app *App) string {
	if app.telemetry == nil {
		return "\n  No recovery data yet."
	}
	recoveries := app.telemetry.Recoveries
	if len(recoveries) == 0 {
		return "\n  No shard recoveries in progress."
	}

	app.pages[viewRecovery] = clampPage(app.pages[viewRecovery], len(recoveries))
	start, end := pageBounds(app.pages[viewRecovery], len(recoveries))

	var b strings.Builder
	b.WriteString(renderTableTitle("Shard Recovery", app.pages[viewRecovery], len(recoveries)))
	b.WriteString("\n")
	b.WriteString(renderColumns(recoveryColumns))
	b.WriteString("\n")

	for i := start; i < end; i++ {
		r := recoveries[i]
		cells := []string{
			r.Index,
			strconv.Itoa(r.Shard),
			r.Stage,
			r.SourceNode,
			r.TargetNode,
			format.Millis(r.TimeMillis),
			r.FilesPercent,
			r.BytesPercent,
			r.TranslogPercent,
		}
		b.WriteString(renderRow(recoveryColumns, cells, i%2 == 1))
		b.WriteString("\n")
	}

	return b.String()
}
