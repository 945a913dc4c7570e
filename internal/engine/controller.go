package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/esmon-go/internal/client"
	"github.com/dm/esmon-go/internal/model"
	"github.com/dm/esmon-go/internal/store"
)

// Kind identifies one independently fetched and normalized category of
// telemetry.
type Kind string

const (
	KindNodeStats    Kind = "node stats"
	KindHealth       Kind = "cluster health"
	KindClusterStats Kind = "cluster stats"
	KindRecovery     Kind = "recovery"
	KindSnapshots    Kind = "snapshots"
)

// Kinds lists every telemetry kind in display order.
var Kinds = []Kind{KindNodeStats, KindHealth, KindClusterStats, KindRecovery, KindSnapshots}

// KindState is the fetch state machine of a single telemetry kind.
type KindState int

const (
	StateIdle KindState = iota
	StateFetching
	StateReady
	StateFailed
)

// String returns a short lowercase label for the state.
func (s KindState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// KindStatus is the current state of one kind plus its last error, set only
// while State is StateFailed.
type KindStatus struct {
	State KindState
	Err   error
}

// ErrRefreshInFlight is returned when RefreshAll is called while a previous
// cycle has not settled. The new cycle is dropped, never queued or overlapped.
var ErrRefreshInFlight = errors.New("refresh already in flight")

// Preference keys, persisted via the injected store.
const (
	prefAutoRefresh = "autoRefresh"
	prefInterval    = "refreshIntervalSeconds"
)

// Controller orchestrates the five telemetry fetches, tracks per-kind state,
// holds the latest normalized telemetry, and runs the auto-refresh schedule.
type Controller struct {
	client    client.Client
	store     store.Store
	scheduler *Scheduler
	updates   chan *model.Telemetry

	mu             sync.Mutex
	settings       model.RefreshSettings
	activeInterval int // seconds; always the last valid value
	statuses       map[Kind]KindStatus
	current        *model.Telemetry
	lastRefresh    time.Time
	busy           bool
}

// NewController builds a Controller, restoring refresh settings from the
// preference store. When the persisted interval is invalid the displayed
// settings keep it, but the active schedule falls back to the minimum.
// A persisted autoRefresh=true arms the scheduler immediately.
func NewController(c client.Client, st store.Store) *Controller {
	settings := model.RefreshSettings{
		AutoRefresh:     st.GetBool(prefAutoRefresh, false),
		IntervalSeconds: st.GetInt(prefInterval, model.MinRefreshIntervalSeconds),
	}
	active := settings.IntervalSeconds
	if !settings.Valid() {
		active = model.MinRefreshIntervalSeconds
	}

	ctrl := &Controller{
		client:         c,
		store:          st,
		scheduler:      NewScheduler(),
		updates:        make(chan *model.Telemetry, 1),
		settings:       settings,
		activeInterval: active,
		statuses:       make(map[Kind]KindStatus, len(Kinds)),
	}
	for _, k := range Kinds {
		ctrl.statuses[k] = KindStatus{State: StateIdle}
	}
	ctrl.rearm()
	return ctrl
}

// Updates delivers each completed refresh cycle's telemetry. The channel is
// buffered; if a receiver lags, intermediate cycles are dropped and only the
// freshest telemetry is observed.
func (c *Controller) Updates() <-chan *model.Telemetry {
	return c.updates
}

// Settings returns the current refresh settings, including an invalid
// interval the user may have typed.
func (c *Controller) Settings() model.RefreshSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// ActiveIntervalSeconds returns the interval actually driving the schedule:
// the last valid value ever set.
func (c *Controller) ActiveIntervalSeconds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeInterval
}

// Status returns the fetch status of one telemetry kind.
func (c *Controller) Status(k Kind) KindStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statuses[k]
}

// Statuses returns a copy of all per-kind statuses.
func (c *Controller) Statuses() map[Kind]KindStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Kind]KindStatus, len(c.statuses))
	for k, v := range c.statuses {
		out[k] = v
	}
	return out
}

// Current returns the latest published telemetry, or nil before the first
// completed cycle. The returned value is never mutated after publication.
func (c *Controller) Current() *model.Telemetry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// LastRefresh returns when the last cycle settled, zero before the first.
func (c *Controller) LastRefresh() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRefresh
}

// RefreshAll fetches all telemetry kinds concurrently and publishes a fresh
// Telemetry. Each kind succeeds or fails on its own: a failed kind is marked
// StateFailed with its error and keeps its previous cycle's data, while the
// other kinds still refresh. lastRefresh is stamped once per cycle whether
// or not every kind succeeded.
//
// A cycle that starts while another is in flight returns ErrRefreshInFlight.
func (c *Controller) RefreshAll(ctx context.Context) (*model.Telemetry, error) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil, ErrRefreshInFlight
	}
	c.busy = true
	for _, k := range Kinds {
		c.statuses[k] = KindStatus{State: StateFetching}
	}
	prev := c.current
	c.mu.Unlock()

	var (
		nodes      []model.NodeRecord
		health     *model.ClusterHealthRecord
		stats      *model.ClusterStatsRecord
		recoveries []model.RecoveryShardRecord
		snapshots  []model.SnapshotRecord

		kindErrs = make(map[Kind]error, len(Kinds))
		errMu    sync.Mutex
	)

	fail := func(k Kind, err error) {
		errMu.Lock()
		kindErrs[k] = err
		errMu.Unlock()
	}

	// Plain errgroup (no WithContext) and nil returns everywhere: one kind's
	// failure must never cancel its siblings.
	var g errgroup.Group

	g.Go(func() error {
		raw, err := c.client.GetNodeStats(ctx)
		if err == nil {
			nodes, err = NormalizeNodeStats(raw)
		}
		if err != nil {
			fail(KindNodeStats, err)
		}
		return nil
	})

	g.Go(func() error {
		raw, err := c.client.GetClusterHealth(ctx)
		if err == nil {
			health, err = NormalizeClusterHealth(raw)
		}
		if err != nil {
			fail(KindHealth, err)
		}
		return nil
	})

	g.Go(func() error {
		raw, err := c.client.GetClusterStats(ctx)
		if err == nil {
			stats, err = NormalizeClusterStats(raw)
		}
		if err != nil {
			fail(KindClusterStats, err)
		}
		return nil
	})

	g.Go(func() error {
		raw, err := c.client.GetRecovery(ctx)
		if err == nil {
			recoveries, err = NormalizeRecovery(raw)
		}
		if err != nil {
			fail(KindRecovery, err)
		}
		return nil
	})

	g.Go(func() error {
		raw, err := c.client.GetSnapshots(ctx)
		if err == nil {
			snapshots, err = NormalizeSnapshots(raw)
		}
		if err != nil {
			fail(KindSnapshots, err)
		}
		return nil
	})

	_ = g.Wait()

	// Build the next telemetry from the previous one so failed kinds keep
	// showing their last known (stale) data.
	next := &model.Telemetry{FetchedAt: time.Now()}
	if prev != nil {
		*next = *prev
		next.FetchedAt = time.Now()
	}
	if kindErrs[KindNodeStats] == nil {
		next.Nodes = nodes
	}
	if kindErrs[KindHealth] == nil {
		next.Health = health
	}
	if kindErrs[KindClusterStats] == nil {
		next.Stats = stats
	}
	if kindErrs[KindRecovery] == nil {
		next.Recoveries = recoveries
	}
	if kindErrs[KindSnapshots] == nil {
		next.Snapshots = snapshots
	}

	c.mu.Lock()
	for _, k := range Kinds {
		if err, ok := kindErrs[k]; ok {
			c.statuses[k] = KindStatus{State: StateFailed, Err: err}
		} else {
			c.statuses[k] = KindStatus{State: StateReady}
		}
	}
	c.current = next
	c.lastRefresh = next.FetchedAt
	c.busy = false
	c.mu.Unlock()

	c.publish(next)

	return next, nil
}

// publish evicts any undelivered cycle from the buffer before sending, so a
// lagging receiver always observes the freshest telemetry.
func (c *Controller) publish(next *model.Telemetry) {
	for {
		select {
		case c.updates <- next:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}

// SetAutoRefresh toggles the recurring schedule. The value is persisted and
// the timer re-armed (or cancelled) immediately.
func (c *Controller) SetAutoRefresh(enabled bool) {
	c.mu.Lock()
	c.settings.AutoRefresh = enabled
	// Preference write failures are non-fatal; the in-memory value still applies.
	_ = c.store.SetBool(prefAutoRefresh, enabled)
	c.mu.Unlock()

	c.rearm()
}

// SetIntervalSeconds updates the refresh period. The typed value is always
// persisted so the UI can echo it back, but values below the minimum return
// false and leave the active schedule on the last valid interval.
func (c *Controller) SetIntervalSeconds(n int) bool {
	c.mu.Lock()
	c.settings.IntervalSeconds = n
	_ = c.store.SetInt(prefInterval, n)
	valid := n >= model.MinRefreshIntervalSeconds
	if valid {
		c.activeInterval = n
	}
	c.mu.Unlock()

	if valid {
		c.rearm()
	}
	return valid
}

// Close cancels the schedule. In-flight fetch results still publish, but no
// further cycles are started.
func (c *Controller) Close() {
	c.scheduler.Stop()
}

// rearm stops the current timer and starts a new one when auto-refresh is
// enabled. Stop-then-start keeps the one-live-timer invariant across every
// settings change.
func (c *Controller) rearm() {
	c.mu.Lock()
	enabled := c.settings.AutoRefresh
	interval := time.Duration(c.activeInterval) * time.Second
	c.mu.Unlock()

	c.scheduler.Stop()
	if !enabled {
		return
	}
	c.scheduler.Start(interval, c.scheduledRefresh)
}

// scheduledRefresh is the timer callback: one refresh cycle bounded to
// finish before the next tick. A cycle still in flight is skipped.
func (c *Controller) scheduledRefresh() {
	c.mu.Lock()
	interval := time.Duration(c.activeInterval) * time.Second
	c.mu.Unlock()

	timeout := interval - 500*time.Millisecond
	if timeout < 500*time.Millisecond {
		timeout = 500 * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, _ = c.RefreshAll(ctx)
}
