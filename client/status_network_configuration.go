package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/status"
)

// StatusNetworkConfigurationRaw returns the response of
// POST "/status/network-configuration". The request has no body.
func (cli *Client) StatusNetworkConfigurationRaw(ctx context.Context, opts ...RequestOption) (*APIResponse[status.NetworkConfigurationResponse], error) {
	return postJSON[status.NetworkConfigurationResponse](ctx, cli, "/status/network-configuration", nil, opts)
}

// StatusNetworkConfiguration returns the network the node is configured
// for, along with its address formats and well-known addresses.
func (cli *Client) StatusNetworkConfiguration(ctx context.Context, opts ...RequestOption) (status.NetworkConfigurationResponse, error) {
	resp, err := cli.StatusNetworkConfigurationRaw(ctx, opts...)
	if err != nil {
		return status.NetworkConfigurationResponse{}, err
	}
	return resp.Value()
}
