package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	endpointNodeStats     = "/_nodes/stats/os,fs?filter_path=nodes.*.name,nodes.*.host,nodes.*.roles,nodes.*.attributes,nodes.*.os,nodes.*.fs.total"
	endpointClusterHealth = "/_cluster/health"
	endpointClusterStats  = "/_cluster/stats"
	endpointRecovery      = "/_recovery?active_only=true"
	endpointSnapshots     = "/_snapshot/_status"
)

// GetNodeStats fetches per-node OS and filesystem statistics from /_nodes/stats.
func (c *HTTPClient) GetNodeStats(ctx context.Context) (*NodeStatsResponse, error) {
	body, err := c.doGet(ctx, endpointNodeStats)
	if err != nil {
		return nil, fmt.Errorf("GetNodeStats: %w", err)
	}

	var result NodeStatsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetNodeStats decode: %w", err)
	}
	return &result, nil
}

// GetClusterHealth fetches cluster health from /_cluster/health.
func (c *HTTPClient) GetClusterHealth(ctx context.Context) (*ClusterHealth, error) {
	body, err := c.doGet(ctx, endpointClusterHealth)
	if err != nil {
		return nil, fmt.Errorf("GetClusterHealth: %w", err)
	}

	var result ClusterHealth
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetClusterHealth decode: %w", err)
	}
	return &result, nil
}

// GetClusterStats fetches cluster-wide aggregate statistics from /_cluster/stats.
func (c *HTTPClient) GetClusterStats(ctx context.Context) (*ClusterStatsResponse, error) {
	body, err := c.doGet(ctx, endpointClusterStats)
	if err != nil {
		return nil, fmt.Errorf("GetClusterStats: %w", err)
	}

	var result ClusterStatsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetClusterStats decode: %w", err)
	}
	return &result, nil
}

// GetRecovery fetches active shard recoveries from /_recovery.
func (c *HTTPClient) GetRecovery(ctx context.Context) (RecoveryResponse, error) {
	body, err := c.doGet(ctx, endpointRecovery)
	if err != nil {
		return nil, fmt.Errorf("GetRecovery: %w", err)
	}

	var result RecoveryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetRecovery decode: %w", err)
	}
	return result, nil
}

// GetSnapshots fetches the status of currently running snapshots from
// /_snapshot/_status.
func (c *HTTPClient) GetSnapshots(ctx context.Context) (*SnapshotStatusResponse, error) {
	body, err := c.doGet(ctx, endpointSnapshots)
	if err != nil {
		return nil, fmt.Errorf("GetSnapshots: %w", err)
	}

	var result SnapshotStatusResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetSnapshots decode: %w", err)
	}
	return &result, nil
}
