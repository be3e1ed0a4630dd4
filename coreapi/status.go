package coreapi

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/status"
	"github.com/radixdlt/babylon-node-sub000/client"
)

// Status holds the node status operations of the Core API.
type Status struct {
	client  client.StatusAPIClient
	network string
}

func newStatus(cli client.StatusAPIClient, network string) *Status {
	return &Status{client: cli, network: network}
}

// GetNetworkConfiguration returns the network the node is configured for.
func (s *Status) GetNetworkConfiguration(ctx context.Context, opts ...client.RequestOption) (status.NetworkConfigurationResponse, error) {
	return s.client.StatusNetworkConfiguration(ctx, opts...)
}

// GetNetworkStatus returns the state identifiers of the node's ledger.
func (s *Status) GetNetworkStatus(ctx context.Context, opts ...client.RequestOption) (status.NetworkStatusResponse, error) {
	return s.client.StatusNetworkStatus(ctx, &status.NetworkStatusRequest{Network: s.network}, opts...)
}
