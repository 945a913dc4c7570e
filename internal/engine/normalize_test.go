package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/esmon-go/internal/client"
	"github.com/dm/esmon-go/internal/model"
)

func TestPercentOf(t *testing.T) {
	cases := []struct {
		name        string
		used, total int64
		want        float64
	}{
		{"half", 50, 100, 50},
		{"full", 100, 100, 100},
		{"empty", 0, 100, 0},
		{"zero total", 42, 0, 0},
		{"zero both", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, percentOf(tc.used, tc.total))
		})
	}
}

func TestPercentOfBounds(t *testing.T) {
	// Any used <= total yields a percent within [0, 100].
	for used := int64(0); used <= 10; used++ {
		for total := used; total <= 10; total++ {
			got := percentOf(used, total)
			assert.GreaterOrEqual(t, got, 0.0, "used=%d total=%d", used, total)
			assert.LessOrEqual(t, got, 100.0, "used=%d total=%d", used, total)
		}
	}
}

func TestNormalizeNodeStats(t *testing.T) {
	raw := &client.NodeStatsResponse{Nodes: map[string]client.NodeStats{
		"n1": {
			Name:       "node-1",
			Host:       "10.0.0.1",
			Roles:      []string{"master", "data"},
			Attributes: map[string]string{"zone": "us-east-1a"},
			OS: &client.NodeOSStats{
				Mem:  &client.MemUsage{UsedInBytes: 50, TotalInBytes: 100},
				Swap: &client.MemUsage{UsedInBytes: 0, TotalInBytes: 0},
			},
			FS: &client.NodeFSStats{},
		},
	}}
	raw.Nodes["n1"].FS.Total.TotalInBytes = 200
	raw.Nodes["n1"].FS.Total.FreeInBytes = 50

	records, err := NormalizeNodeStats(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "n1", rec.ID)
	assert.Equal(t, "node-1", rec.Name)
	assert.Equal(t, "10.0.0.1", rec.Host)
	assert.Equal(t, []string{"data", "master"}, rec.Roles, "roles are sorted")
	assert.Equal(t, "us-east-1a", rec.Zone)

	assert.Equal(t, 50.0, rec.Mem.Percent)
	assert.Equal(t, 0.0, rec.Swap.Percent, "zero total never divides")
	assert.Equal(t, int64(150), rec.FS.Used, "fs used = total - free")
	assert.Equal(t, 75.0, rec.FS.Percent)
}

func TestNormalizeNodeStatsEmptyDisk(t *testing.T) {
	raw := &client.NodeStatsResponse{Nodes: map[string]client.NodeStats{}}
	n := client.NodeStats{Name: "node-2"}
	n.FS = &client.NodeFSStats{}
	n.FS.Total.TotalInBytes = 100
	n.FS.Total.FreeInBytes = 100
	raw.Nodes["n2"] = n

	records, err := NormalizeNodeStats(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(0), records[0].FS.Used)
	assert.Equal(t, 0.0, records[0].FS.Percent)
}

func TestNormalizeNodeStatsOptionalSectionsDefault(t *testing.T) {
	raw := &client.NodeStatsResponse{Nodes: map[string]client.NodeStats{
		"n1": {Name: "node-1"},
	}}

	records, err := NormalizeNodeStats(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Zero(t, rec.CPUPercent)
	assert.Zero(t, rec.Mem)
	assert.Zero(t, rec.Swap)
	assert.Zero(t, rec.FS)
	assert.Empty(t, rec.Zone)
}

func TestNormalizeNodeStatsSortedByID(t *testing.T) {
	raw := &client.NodeStatsResponse{Nodes: map[string]client.NodeStats{
		"zz": {Name: "z"}, "aa": {Name: "a"}, "mm": {Name: "m"},
	}}

	records, err := NormalizeNodeStats(raw)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "aa", records[0].ID)
	assert.Equal(t, "mm", records[1].ID)
	assert.Equal(t, "zz", records[2].ID)
}

func TestNormalizeNodeStatsMalformed(t *testing.T) {
	var malformed *MalformedError

	_, err := NormalizeNodeStats(nil)
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, KindNodeStats, malformed.Kind)

	_, err = NormalizeNodeStats(&client.NodeStatsResponse{})
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "nodes", malformed.Field)
}

func TestNormalizeClusterHealth(t *testing.T) {
	raw := &client.ClusterHealth{
		ClusterName:                 "prod",
		Status:                      "yellow",
		NumberOfNodes:               5,
		NumberOfDataNodes:           3,
		ActivePrimaryShards:         40,
		ActiveShards:                80,
		RelocatingShards:            1,
		InitializingShards:          2,
		UnassignedShards:            3,
		ActiveShardsPercentAsNumber: 94.1,
	}

	rec, err := NormalizeClusterHealth(raw)
	require.NoError(t, err)
	assert.Equal(t, "prod", rec.ClusterName)
	assert.Equal(t, "yellow", rec.Status)
	assert.Equal(t, 80, rec.ActiveShards)
	assert.Equal(t, 3, rec.UnassignedShards)
	assert.Equal(t, 94.1, rec.ActiveShardsPercent, "source value passed through, not re-derived")

	_, err = NormalizeClusterHealth(nil)
	assert.Error(t, err)
}

func TestNormalizeClusterStats(t *testing.T) {
	raw := &client.ClusterStatsResponse{
		ClusterName: "prod",
		Nodes:       &client.ClusterNodesStats{Versions: []string{"8.13.0", "8.12.2"}},
		Indices:     &client.ClusterIndicesStats{Count: 12},
	}
	raw.Nodes.Count.Total = 5
	raw.Nodes.Count.Master = 3
	raw.Nodes.Count.Data = 4
	raw.Nodes.JVM.MaxUptimeInMillis = 86_400_000
	raw.Nodes.JVM.Mem.HeapUsedInBytes = 30
	raw.Nodes.JVM.Mem.HeapMaxInBytes = 120
	raw.Nodes.FS.TotalInBytes = 1000
	raw.Nodes.FS.FreeInBytes = 250
	raw.Indices.Shards.Total = 80
	raw.Indices.Shards.Primaries = 40
	raw.Indices.Shards.Replication = 1
	raw.Indices.Docs.Count = 123456
	raw.Indices.Store.SizeInBytes = 9999
	raw.Indices.Segments.Count = 321

	rec, err := NormalizeClusterStats(raw)
	require.NoError(t, err)

	assert.Equal(t, 5, rec.Nodes.Total)
	assert.Equal(t, 3, rec.Nodes.Master)
	assert.Equal(t, 0, rec.Nodes.Ingest, "absent role count defaults to 0")
	assert.Equal(t, 25.0, rec.JVMHeap.Percent, "heap percent derived")
	assert.Equal(t, int64(750), rec.FS.Used)
	assert.Equal(t, 75.0, rec.FS.Percent)
	assert.Equal(t, []string{"8.12.2", "8.13.0"}, rec.Versions, "versions sorted")
	assert.Equal(t, int64(86_400_000), rec.MaxUptimeMillis)
	assert.Equal(t, 12, rec.Indices.Count)
	assert.Equal(t, int64(123456), rec.Indices.Docs)
}

func TestNormalizeClusterStatsMissingSections(t *testing.T) {
	// Nodes section is required.
	_, err := NormalizeClusterStats(&client.ClusterStatsResponse{ClusterName: "x"})
	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, KindClusterStats, malformed.Kind)

	// Indices section is optional and defaults to zeros.
	rec, err := NormalizeClusterStats(&client.ClusterStatsResponse{
		ClusterName: "x",
		Nodes:       &client.ClusterNodesStats{},
	})
	require.NoError(t, err)
	assert.Zero(t, rec.Indices)
}

func TestNormalizeRecoverySentinels(t *testing.T) {
	shard := client.RecoveryShard{ID: 0}
	shard.Index.Files.Total = 0
	shard.Index.Size.TotalInBytes = 0
	shard.Translog.Total = 0

	raw := client.RecoveryResponse{"idx1": {Shards: []client.RecoveryShard{shard}}}

	records, err := NormalizeRecovery(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, model.PercentNotApplicable, rec.FilesPercent)
	assert.Equal(t, model.PercentNotApplicable, rec.BytesPercent)
	assert.Equal(t, model.PercentNotApplicable, rec.TranslogPercent)
}

func TestNormalizeRecoveryPassthroughPercent(t *testing.T) {
	shard := client.RecoveryShard{
		ID:                2,
		Stage:             "index",
		Type:              "peer",
		Primary:           true,
		TotalTimeInMillis: 4200,
		Source:            client.RecoveryNode{Name: "node-a"},
		Target:            client.RecoveryNode{Name: "node-b"},
	}
	shard.Index.Files = client.RecoveryCounter{Total: 8, Recovered: 7, Percent: "87.5%"}
	shard.Index.Size = client.RecoverySize{TotalInBytes: 1000, RecoveredInBytes: 400, Percent: "40.0%"}
	shard.Translog = client.RecoveryCounter{Total: 20, Recovered: 20, Percent: "100.0%"}

	records, err := NormalizeRecovery(client.RecoveryResponse{
		"logs-2024": {Shards: []client.RecoveryShard{shard}},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "logs-2024", rec.Index)
	assert.Equal(t, 2, rec.Shard)
	assert.True(t, rec.Primary)
	assert.Equal(t, "index", rec.Stage)
	assert.Equal(t, "node-a", rec.SourceNode)
	assert.Equal(t, "node-b", rec.TargetNode)
	assert.Equal(t, "87.5%", rec.FilesPercent, "source string kept verbatim")
	assert.Equal(t, "40.0%", rec.BytesPercent)
	assert.Equal(t, "100.0%", rec.TranslogPercent)
}

func TestNormalizeRecoveryFlattensAndSorts(t *testing.T) {
	raw := client.RecoveryResponse{
		"beta":  {Shards: []client.RecoveryShard{{ID: 1}, {ID: 0}}},
		"alpha": {Shards: []client.RecoveryShard{{ID: 3}}},
	}

	records, err := NormalizeRecovery(raw)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "alpha", records[0].Index)
	assert.Equal(t, "beta", records[1].Index)
	assert.Equal(t, 0, records[1].Shard)
	assert.Equal(t, 1, records[2].Shard)
}

func TestNormalizeRecoveryEmpty(t *testing.T) {
	records, err := NormalizeRecovery(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNormalizeSnapshots(t *testing.T) {
	raw := &client.SnapshotStatusResponse{Snapshots: []client.SnapshotStatus{
		{
			Snapshot:    "nightly-2026-08-26",
			Repository:  "backups",
			UUID:        "abc123",
			State:       "STARTED",
			ShardsStats: client.SnapshotShardsStats{Started: 2, Done: 6, Total: 8},
			Stats: client.SnapshotStats{
				Incremental:       client.SnapshotFileStats{FileCount: 10, SizeInBytes: 2048},
				Total:             client.SnapshotFileStats{FileCount: 100, SizeInBytes: 40960},
				StartTimeInMillis: 1_700_000_000_000,
				TimeInMillis:      90_000,
			},
			Indices: map[string]client.SnapshotIndexStatus{
				"logs": {
					ShardsStats: client.SnapshotShardsStats{Done: 3, Total: 3},
					Shards: map[string]client.SnapshotShardStatus{
						"0": {Stage: "DONE"},
					},
				},
			},
		},
	}}

	records, err := NormalizeSnapshots(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "nightly-2026-08-26", rec.Name)
	assert.Equal(t, "backups", rec.Repository)
	assert.Equal(t, "STARTED", rec.State)
	assert.Equal(t, 8, rec.Shards.Total)
	assert.Equal(t, int64(40960), rec.Stats.TotalBytes)
	assert.Equal(t, int64(90_000), rec.Stats.DurationMillis)

	require.Contains(t, rec.Indices, "logs")
	idx := rec.Indices["logs"]
	assert.Equal(t, 3, idx.Shards.Done)
	require.Contains(t, idx.ShardsByID, "0")
	assert.Equal(t, "DONE", idx.ShardsByID["0"].Stage)
}

func TestNormalizeSnapshotsEmptyIsSteadyState(t *testing.T) {
	records, err := NormalizeSnapshots(nil)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	records, err = NormalizeSnapshots(&client.SnapshotStatusResponse{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
