package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/status"
)

// StatusNetworkStatusRaw returns the response of POST "/status/network-status".
func (cli *Client) StatusNetworkStatusRaw(ctx context.Context, req *status.NetworkStatusRequest, opts ...RequestOption) (*APIResponse[status.NetworkStatusResponse], error) {
	if req == nil {
		return nil, invalidRequest("network status")
	}
	return postJSON[status.NetworkStatusResponse](ctx, cli, "/status/network-status", req, opts)
}

// StatusNetworkStatus returns the pre-genesis, genesis and current state
// identifiers of the node's ledger.
func (cli *Client) StatusNetworkStatus(ctx context.Context, req *status.NetworkStatusRequest, opts ...RequestOption) (status.NetworkStatusResponse, error) {
	resp, err := cli.StatusNetworkStatusRaw(ctx, req, opts...)
	if err != nil {
		return status.NetworkStatusResponse{}, err
	}
	return resp.Value()
}
