package engine

import (
	"context"

	"github.com/dm/esmon-go/internal/client"
)

// MockClient implements client.Client for testing. Unset function fields
// fall back to minimal healthy responses.
type MockClient struct {
	NodeStatsFn    func(ctx context.Context) (*client.NodeStatsResponse, error)
	HealthFn       func(ctx context.Context) (*client.ClusterHealth, error)
	ClusterStatsFn func(ctx context.Context) (*client.ClusterStatsResponse, error)
	RecoveryFn     func(ctx context.Context) (client.RecoveryResponse, error)
	SnapshotsFn    func(ctx context.Context) (*client.SnapshotStatusResponse, error)
}

func (m *MockClient) GetNodeStats(ctx context.Context) (*client.NodeStatsResponse, error) {
	if m.NodeStatsFn != nil {
		return m.NodeStatsFn(ctx)
	}
	return &client.NodeStatsResponse{Nodes: map[string]client.NodeStats{
		"n1": {Name: "node-1", Host: "10.0.0.1", Roles: []string{"master", "data"}},
	}}, nil
}

func (m *MockClient) GetClusterHealth(ctx context.Context) (*client.ClusterHealth, error) {
	if m.HealthFn != nil {
		return m.HealthFn(ctx)
	}
	return &client.ClusterHealth{ClusterName: "test", Status: "green"}, nil
}

func (m *MockClient) GetClusterStats(ctx context.Context) (*client.ClusterStatsResponse, error) {
	if m.ClusterStatsFn != nil {
		return m.ClusterStatsFn(ctx)
	}
	return &client.ClusterStatsResponse{
		ClusterName: "test",
		Nodes:       &client.ClusterNodesStats{},
	}, nil
}

func (m *MockClient) GetRecovery(ctx context.Context) (client.RecoveryResponse, error) {
	if m.RecoveryFn != nil {
		return m.RecoveryFn(ctx)
	}
	return client.RecoveryResponse{}, nil
}

func (m *MockClient) GetSnapshots(ctx context.Context) (*client.SnapshotStatusResponse, error) {
	if m.SnapshotsFn != nil {
		return m.SnapshotsFn(ctx)
	}
	return &client.SnapshotStatusResponse{}, nil
}

func (m *MockClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MockClient) BaseURL() string {
	return "http://mock:9200"
}
