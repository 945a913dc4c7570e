package model

// MinRefreshIntervalSeconds is the lowest refresh period a user may
// configure. Values below it are persisted (so the UI can echo them back)
// but never drive the active schedule.
const MinRefreshIntervalSeconds = 30

// RefreshSettings holds the user-configurable refresh behaviour,
// persisted across sessions.
type RefreshSettings struct {
	AutoRefresh     bool
	IntervalSeconds int
}

// DefaultRefreshSettings returns the out-of-the-box refresh behaviour:
// auto-refresh off, 30 second interval.
func DefaultRefreshSettings() RefreshSettings {
	return RefreshSettings{
		AutoRefresh:     false,
		IntervalSeconds: MinRefreshIntervalSeconds,
	}
}

// Valid reports whether the settings' interval may drive a schedule.
func (s RefreshSettings) Valid() bool {
	return s.IntervalSeconds >= MinRefreshIntervalSeconds
}
