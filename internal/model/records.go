package model

import "time"

// Usage is a used/total byte pair with a derived percentage. Percent is
// always computed as used/total*100 and is 0 when total is 0 — it is never
// taken verbatim from a telemetry source.
type Usage struct {
	Used    int64
	Total   int64
	Percent float64
}

// NodeRecord is the flat, display-ready record for one cluster node.
// A fresh set is produced on every fetch cycle; only ID carries identity
// across cycles.
type NodeRecord struct {
	ID         string
	Name       string
	Host       string
	Roles      []string // sorted
	Zone       string   // "" when the node reports no zone attribute
	CPUPercent float64
	Mem        Usage
	Swap       Usage
	FS         Usage
}

// ClusterHealthRecord is the flat view of the cluster health summary.
// ActiveShardsPercent is source-provided and not re-derived.
type ClusterHealthRecord struct {
	ClusterName         string
	Status              string // green | yellow | red
	NumberOfNodes       int
	NumberOfDataNodes   int
	ActiveShards        int
	ActivePrimaryShards int
	RelocatingShards    int
	InitializingShards  int
	UnassignedShards    int
	ActiveShardsPercent float64
}

// NodeRoleCounts holds the per-role node counts of the cluster.
type NodeRoleCounts struct {
	Total            int
	Master           int
	Data             int
	Ingest           int
	CoordinatingOnly int
}

// IndicesSummary aggregates index-level statistics across the cluster.
type IndicesSummary struct {
	Count          int
	Shards         int
	PrimaryShards  int
	Replication    float64
	Docs           int64
	StoreSizeBytes int64
	Segments       int64
}

// ClusterStatsRecord is the flat view of cluster-wide aggregate stats.
type ClusterStatsRecord struct {
	ClusterName     string
	Nodes           NodeRoleCounts
	JVMHeap         Usage
	FS              Usage
	Indices         IndicesSummary
	Versions        []string
	MaxUptimeMillis int64
}

// PercentNotApplicable is the sentinel used for recovery progress
// percentages whose denominator is zero, distinguishing "nothing to do"
// from "0% done".
const PercentNotApplicable = "-"

// RecoveryShardRecord is one shard currently in recovery. The percent
// fields carry the source-formatted string (e.g. "87.5%") unmodified, or
// PercentNotApplicable when the matching total is 0.
type RecoveryShardRecord struct {
	Index             string
	Shard             int
	Primary           bool
	Type              string
	Stage             string
	SourceNode        string
	TargetNode        string
	TimeMillis        int64
	FilesTotal        int64
	FilesRecovered    int64
	FilesPercent      string
	BytesTotal        int64
	BytesRecovered    int64
	BytesPercent      string
	TranslogTotal     int64
	TranslogRecovered int64
	TranslogPercent   string
}

// SnapshotShardCounts is the per-state shard breakdown of a snapshot.
type SnapshotShardCounts struct {
	Initializing int
	Started      int
	Finalizing   int
	Done         int
	Failed       int
	Total        int
}

// SnapshotSizeStats holds size and duration statistics of a snapshot.
type SnapshotSizeStats struct {
	IncrementalFiles int
	IncrementalBytes int64
	TotalFiles       int
	TotalBytes       int64
	StartTimeMillis  int64
	DurationMillis   int64
}

// SnapshotShardRecord is the status of one shard within a snapshot.
type SnapshotShardRecord struct {
	Stage string
	Stats SnapshotSizeStats
}

// SnapshotIndexRecord is the per-index breakdown within a snapshot.
type SnapshotIndexRecord struct {
	Shards SnapshotShardCounts
	Stats  SnapshotSizeStats
	// ShardsByID maps shard number (as reported, a decimal string) to its status.
	ShardsByID map[string]SnapshotShardRecord
}

// SnapshotRecord is one running snapshot with its nested per-index and
// per-shard breakdown.
type SnapshotRecord struct {
	Name       string
	Repository string
	UUID       string
	State      string
	Shards     SnapshotShardCounts
	Stats      SnapshotSizeStats
	Indices    map[string]SnapshotIndexRecord
}

// Telemetry holds the normalized results of one refresh cycle. A cycle
// builds a fresh Telemetry and swaps it in whole; it is never mutated
// after publication.
type Telemetry struct {
	Nodes      []NodeRecord
	Health     *ClusterHealthRecord
	Stats      *ClusterStatsRecord
	Recoveries []RecoveryShardRecord
	Snapshots  []SnapshotRecord
	FetchedAt  time.Time
}
