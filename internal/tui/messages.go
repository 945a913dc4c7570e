package tui

import "github.com/dm/esmon-go/internal/model"

// TelemetryMsg delivers a completed refresh cycle to the TUI.
type TelemetryMsg struct {
	Telemetry *model.Telemetry
}

// RefreshRequestedMsg signals that a manual refresh was issued; the result
// arrives later as a TelemetryMsg via the controller's update channel.
type RefreshRequestedMsg struct{}
