package engine

import (
	"fmt"
	"sort"

	"github.com/dm/esmon-go/internal/client"
	"github.com/dm/esmon-go/internal/model"
)

// zoneAttribute is the node attribute key carrying placement zone.
const zoneAttribute = "zone"

// MalformedError reports a telemetry document whose required top-level
// structure is missing. It is reported like a transport failure: the
// affected kind is marked failed, other kinds are unaffected.
type MalformedError struct {
	Kind  Kind
	Field string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s telemetry: missing %q", e.Kind, e.Field)
}

// percentOf returns used/total*100, or 0 when total is 0. For sane inputs
// (0 <= used <= total) the result is always within [0, 100].
func percentOf(used, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// usageOf builds a Usage with its derived percentage.
func usageOf(used, total int64) model.Usage {
	return model.Usage{Used: used, Total: total, Percent: percentOf(used, total)}
}

// NormalizeNodeStats flattens the raw per-node stats map into one NodeRecord
// per node. Memory, swap and filesystem percentages are derived from their
// used/total pairs, never taken from the source. Optional sections default
// to zero values; a missing top-level nodes map is a MalformedError.
func NormalizeNodeStats(raw *client.NodeStatsResponse) ([]model.NodeRecord, error) {
	if raw == nil || raw.Nodes == nil {
		return nil, &MalformedError{Kind: KindNodeStats, Field: "nodes"}
	}

	records := make([]model.NodeRecord, 0, len(raw.Nodes))
	for id, n := range raw.Nodes {
		rec := model.NodeRecord{
			ID:    id,
			Name:  n.Name,
			Host:  n.Host,
			Roles: append([]string(nil), n.Roles...),
			Zone:  n.Attributes[zoneAttribute],
		}
		sort.Strings(rec.Roles)

		if n.OS != nil {
			rec.CPUPercent = n.OS.CPU.Percent
			if n.OS.Mem != nil {
				rec.Mem = usageOf(n.OS.Mem.UsedInBytes, n.OS.Mem.TotalInBytes)
			}
			if n.OS.Swap != nil {
				rec.Swap = usageOf(n.OS.Swap.UsedInBytes, n.OS.Swap.TotalInBytes)
			}
		}
		if n.FS != nil {
			total := n.FS.Total.TotalInBytes
			rec.FS = usageOf(total-n.FS.Total.FreeInBytes, total)
		}

		records = append(records, rec)
	}

	// Map iteration order is random; records are keyed by node ID.
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// NormalizeClusterHealth maps the flat health summary onto a
// ClusterHealthRecord. ActiveShardsPercent is passed through verbatim.
func NormalizeClusterHealth(raw *client.ClusterHealth) (*model.ClusterHealthRecord, error) {
	if raw == nil {
		return nil, &MalformedError{Kind: KindHealth, Field: "cluster_name"}
	}
	return &model.ClusterHealthRecord{
		ClusterName:         raw.ClusterName,
		Status:              raw.Status,
		NumberOfNodes:       raw.NumberOfNodes,
		NumberOfDataNodes:   raw.NumberOfDataNodes,
		ActiveShards:        raw.ActiveShards,
		ActivePrimaryShards: raw.ActivePrimaryShards,
		RelocatingShards:    raw.RelocatingShards,
		InitializingShards:  raw.InitializingShards,
		UnassignedShards:    raw.UnassignedShards,
		ActiveShardsPercent: raw.ActiveShardsPercentAsNumber,
	}, nil
}

// NormalizeClusterStats maps the nested cluster-wide stats document onto a
// flat ClusterStatsRecord. The nodes section is required; the indices
// section is optional (an empty cluster reports none) and defaults to zeros.
func NormalizeClusterStats(raw *client.ClusterStatsResponse) (*model.ClusterStatsRecord, error) {
	if raw == nil || raw.Nodes == nil {
		return nil, &MalformedError{Kind: KindClusterStats, Field: "nodes"}
	}

	n := raw.Nodes
	rec := &model.ClusterStatsRecord{
		ClusterName: raw.ClusterName,
		Nodes: model.NodeRoleCounts{
			Total:            n.Count.Total,
			Master:           n.Count.Master,
			Data:             n.Count.Data,
			Ingest:           n.Count.Ingest,
			CoordinatingOnly: n.Count.CoordinatingOnly,
		},
		JVMHeap:         usageOf(n.JVM.Mem.HeapUsedInBytes, n.JVM.Mem.HeapMaxInBytes),
		FS:              usageOf(n.FS.TotalInBytes-n.FS.FreeInBytes, n.FS.TotalInBytes),
		Versions:        append([]string(nil), n.Versions...),
		MaxUptimeMillis: n.JVM.MaxUptimeInMillis,
	}
	sort.Strings(rec.Versions)

	if idx := raw.Indices; idx != nil {
		rec.Indices = model.IndicesSummary{
			Count:          idx.Count,
			Shards:         idx.Shards.Total,
			PrimaryShards:  idx.Shards.Primaries,
			Replication:    idx.Shards.Replication,
			Docs:           idx.Docs.Count,
			StoreSizeBytes: idx.Store.SizeInBytes,
			Segments:       idx.Segments.Count,
		}
	}

	return rec, nil
}

// recoveryPercent returns the source percent string, or the "-" sentinel
// when the denominator is zero ("nothing to recover" rather than "0%").
// Source percents already encode rounding, so they are never re-derived.
func recoveryPercent(total int64, percent string) string {
	if total == 0 {
		return model.PercentNotApplicable
	}
	return percent
}

// NormalizeRecovery flattens the two-level index → shard-recoveries map
// into one record per recovering shard, sorted by index then shard number.
// A nil map means no recoveries are running and yields an empty list.
func NormalizeRecovery(raw client.RecoveryResponse) ([]model.RecoveryShardRecord, error) {
	records := make([]model.RecoveryShardRecord, 0, len(raw))
	for index, ri := range raw {
		for _, s := range ri.Shards {
			records = append(records, model.RecoveryShardRecord{
				Index:             index,
				Shard:             s.ID,
				Primary:           s.Primary,
				Type:              s.Type,
				Stage:             s.Stage,
				SourceNode:        s.Source.Name,
				TargetNode:        s.Target.Name,
				TimeMillis:        s.TotalTimeInMillis,
				FilesTotal:        s.Index.Files.Total,
				FilesRecovered:    s.Index.Files.Recovered,
				FilesPercent:      recoveryPercent(s.Index.Files.Total, s.Index.Files.Percent),
				BytesTotal:        s.Index.Size.TotalInBytes,
				BytesRecovered:    s.Index.Size.RecoveredInBytes,
				BytesPercent:      recoveryPercent(s.Index.Size.TotalInBytes, s.Index.Size.Percent),
				TranslogTotal:     s.Translog.Total,
				TranslogRecovered: s.Translog.Recovered,
				TranslogPercent:   recoveryPercent(s.Translog.Total, s.Translog.Percent),
			})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Index != records[j].Index {
			return records[i].Index < records[j].Index
		}
		return records[i].Shard < records[j].Shard
	})
	return records, nil
}

// NormalizeSnapshots converts the snapshot status list. A nil response or
// absent snapshots array means no snapshots are running — a normal steady
// state yielding an empty list, not an error.
func NormalizeSnapshots(raw *client.SnapshotStatusResponse) ([]model.SnapshotRecord, error) {
	if raw == nil || len(raw.Snapshots) == 0 {
		return []model.SnapshotRecord{}, nil
	}

	records := make([]model.SnapshotRecord, 0, len(raw.Snapshots))
	for _, s := range raw.Snapshots {
		rec := model.SnapshotRecord{
			Name:       s.Snapshot,
			Repository: s.Repository,
			UUID:       s.UUID,
			State:      s.State,
			Shards:     shardCounts(s.ShardsStats),
			Stats:      sizeStats(s.Stats),
			Indices:    make(map[string]model.SnapshotIndexRecord, len(s.Indices)),
		}
		for name, idx := range s.Indices {
			ir := model.SnapshotIndexRecord{
				Shards:     shardCounts(idx.ShardsStats),
				Stats:      sizeStats(idx.Stats),
				ShardsByID: make(map[string]model.SnapshotShardRecord, len(idx.Shards)),
			}
			for id, sh := range idx.Shards {
				ir.ShardsByID[id] = model.SnapshotShardRecord{
					Stage: sh.Stage,
					Stats: sizeStats(sh.Stats),
				}
			}
			rec.Indices[name] = ir
		}
		records = append(records, rec)
	}
	return records, nil
}

func shardCounts(s client.SnapshotShardsStats) model.SnapshotShardCounts {
	return model.SnapshotShardCounts{
		Initializing: s.Initializing,
		Started:      s.Started,
		Finalizing:   s.Finalizing,
		Done:         s.Done,
		Failed:       s.Failed,
		Total:        s.Total,
	}
}

func sizeStats(s client.SnapshotStats) model.SnapshotSizeStats {
	return model.SnapshotSizeStats{
		IncrementalFiles: s.Incremental.FileCount,
		IncrementalBytes: s.Incremental.SizeInBytes,
		TotalFiles:       s.Total.FileCount,
		TotalBytes:       s.Total.SizeInBytes,
		StartTimeMillis:  s.StartTimeInMillis,
		DurationMillis:   s.TimeInMillis,
	}
}
