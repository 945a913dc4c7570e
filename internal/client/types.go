package client

// NodeStatsResponse represents the response from /_nodes/stats/os,fs.
type NodeStatsResponse struct {
	Nodes map[string]NodeStats `json:"nodes"`
}

// NodeStats holds per-node OS and filesystem data.
type NodeStats struct {
	Name       string            `json:"name"`
	Host       string            `json:"host"`
	Roles      []string          `json:"roles"`
	Attributes map[string]string `json:"attributes"`
	OS         *NodeOSStats      `json:"os,omitempty"`
	FS         *NodeFSStats      `json:"fs,omitempty"`
}

// NodeOSStats holds OS-level metrics for a node.
type NodeOSStats struct {
	CPU struct {
		Percent float64 `json:"percent"`
	} `json:"cpu"`
	Mem  *MemUsage `json:"mem,omitempty"`
	Swap *MemUsage `json:"swap,omitempty"`
}

// MemUsage holds a used/total byte pair as reported for memory and swap.
type MemUsage struct {
	TotalInBytes int64 `json:"total_in_bytes"`
	UsedInBytes  int64 `json:"used_in_bytes"`
}

// NodeFSStats holds filesystem totals for a node.
type NodeFSStats struct {
	Total struct {
		TotalInBytes int64 `json:"total_in_bytes"`
		FreeInBytes  int64 `json:"free_in_bytes"`
	} `json:"total"`
}

// ClusterHealth represents the response from /_cluster/health.
type ClusterHealth struct {
	ClusterName                 string  `json:"cluster_name"`
	Status                      string  `json:"status"`
	NumberOfNodes               int     `json:"number_of_nodes"`
	NumberOfDataNodes           int     `json:"number_of_data_nodes"`
	ActivePrimaryShards         int     `json:"active_primary_shards"`
	ActiveShards                int     `json:"active_shards"`
	RelocatingShards            int     `json:"relocating_shards"`
	InitializingShards          int     `json:"initializing_shards"`
	UnassignedShards            int     `json:"unassigned_shards"`
	ActiveShardsPercentAsNumber float64 `json:"active_shards_percent_as_number"`
}

// ClusterStatsResponse represents the response from /_cluster/stats.
type ClusterStatsResponse struct {
	ClusterName string               `json:"cluster_name"`
	Nodes       *ClusterNodesStats   `json:"nodes,omitempty"`
	Indices     *ClusterIndicesStats `json:"indices,omitempty"`
}

// ClusterNodesStats holds the nodes section of /_cluster/stats.
type ClusterNodesStats struct {
	Count struct {
		Total            int `json:"total"`
		Master           int `json:"master"`
		Data             int `json:"data"`
		Ingest           int `json:"ingest"`
		CoordinatingOnly int `json:"coordinating_only"`
	} `json:"count"`
	Versions []string `json:"versions"`
	JVM      struct {
		MaxUptimeInMillis int64 `json:"max_uptime_in_millis"`
		Mem               struct {
			HeapUsedInBytes int64 `json:"heap_used_in_bytes"`
			HeapMaxInBytes  int64 `json:"heap_max_in_bytes"`
		} `json:"mem"`
	} `json:"jvm"`
	FS struct {
		TotalInBytes int64 `json:"total_in_bytes"`
		FreeInBytes  int64 `json:"free_in_bytes"`
	} `json:"fs"`
}

// ClusterIndicesStats holds the indices section of /_cluster/stats.
type ClusterIndicesStats struct {
	Count  int `json:"count"`
	Shards struct {
		Total       int     `json:"total"`
		Primaries   int     `json:"primaries"`
		Replication float64 `json:"replication"`
	} `json:"shards"`
	Docs struct {
		Count int64 `json:"count"`
	} `json:"docs"`
	Store struct {
		SizeInBytes int64 `json:"size_in_bytes"`
	} `json:"store"`
	Segments struct {
		Count int64 `json:"count"`
	} `json:"segments"`
}

// RecoveryResponse represents the response from /_recovery: a map of
// index name to the recoveries running for its shards.
type RecoveryResponse map[string]RecoveryIndex

// RecoveryIndex holds the shard recoveries of a single index.
type RecoveryIndex struct {
	Shards []RecoveryShard `json:"shards"`
}

// RecoveryShard is one shard recovery entry.
type RecoveryShard struct {
	ID                int               `json:"id"`
	Type              string            `json:"type"`
	Stage             string            `json:"stage"`
	Primary           bool              `json:"primary"`
	TotalTimeInMillis int64             `json:"total_time_in_millis"`
	Source            RecoveryNode      `json:"source"`
	Target            RecoveryNode      `json:"target"`
	Index             RecoveryIndexPart `json:"index"`
	Translog          RecoveryCounter   `json:"translog"`
}

// RecoveryNode identifies one endpoint of a shard recovery.
type RecoveryNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Host string `json:"host"`
}

// RecoveryIndexPart holds file and byte progress of a shard recovery.
type RecoveryIndexPart struct {
	Files RecoveryCounter `json:"files"`
	Size  RecoverySize    `json:"size"`
}

// RecoveryCounter is a recovered/total pair with a source-formatted percent
// string (e.g. "87.5%").
type RecoveryCounter struct {
	Total     int64  `json:"total"`
	Recovered int64  `json:"recovered"`
	Percent   string `json:"percent"`
}

// RecoverySize is the byte-counted variant of RecoveryCounter.
type RecoverySize struct {
	TotalInBytes     int64  `json:"total_in_bytes"`
	RecoveredInBytes int64  `json:"recovered_in_bytes"`
	Percent          string `json:"percent"`
}

// SnapshotStatusResponse represents the response from /_snapshot/_status.
type SnapshotStatusResponse struct {
	Snapshots []SnapshotStatus `json:"snapshots"`
}

// SnapshotStatus is the status of one running snapshot.
type SnapshotStatus struct {
	Snapshot           string                         `json:"snapshot"`
	Repository         string                         `json:"repository"`
	UUID               string                         `json:"uuid"`
	State              string                         `json:"state"`
	IncludeGlobalState bool                           `json:"include_global_state"`
	ShardsStats        SnapshotShardsStats            `json:"shards_stats"`
	Stats              SnapshotStats                  `json:"stats"`
	Indices            map[string]SnapshotIndexStatus `json:"indices"`
}

// SnapshotShardsStats is the per-state shard count breakdown of a snapshot.
type SnapshotShardsStats struct {
	Initializing int `json:"initializing"`
	Started      int `json:"started"`
	Finalizing   int `json:"finalizing"`
	Done         int `json:"done"`
	Failed       int `json:"failed"`
	Total        int `json:"total"`
}

// SnapshotStats holds size and timing statistics of a snapshot.
type SnapshotStats struct {
	Incremental       SnapshotFileStats `json:"incremental"`
	Total             SnapshotFileStats `json:"total"`
	StartTimeInMillis int64             `json:"start_time_in_millis"`
	TimeInMillis      int64             `json:"time_in_millis"`
}

// SnapshotFileStats is a file count plus byte size pair.
type SnapshotFileStats struct {
	FileCount   int   `json:"file_count"`
	SizeInBytes int64 `json:"size_in_bytes"`
}

// SnapshotIndexStatus is the per-index breakdown within a snapshot.
type SnapshotIndexStatus struct {
	ShardsStats SnapshotShardsStats            `json:"shards_stats"`
	Stats       SnapshotStats                  `json:"stats"`
	Shards      map[string]SnapshotShardStatus `json:"shards"`
}

// SnapshotShardStatus is the status of a single shard within a snapshot.
type SnapshotShardStatus struct {
	Stage string        `json:"stage"`
	Stats SnapshotStats `json:"stats"`
}
