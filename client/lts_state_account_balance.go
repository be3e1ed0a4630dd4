package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

// LTSStateAccountFungibleResourceBalanceRaw returns the response of
// POST "/lts/state/account-fungible-resource-balance".
func (cli *Client) LTSStateAccountFungibleResourceBalanceRaw(ctx context.Context, req *lts.StateAccountFungibleResourceBalanceRequest, opts ...RequestOption) (*APIResponse[lts.StateAccountFungibleResourceBalanceResponse], error) {
	if req == nil {
		return nil, invalidRequest("account fungible resource balance")
	}
	return postJSON[lts.StateAccountFungibleResourceBalanceResponse](ctx, cli, "/lts/state/account-fungible-resource-balance", req, opts)
}

// LTSStateAccountFungibleResourceBalance returns the balance of a single
// fungible resource in an account.
func (cli *Client) LTSStateAccountFungibleResourceBalance(ctx context.Context, req *lts.StateAccountFungibleResourceBalanceRequest, opts ...RequestOption) (lts.StateAccountFungibleResourceBalanceResponse, error) {
	resp, err := cli.LTSStateAccountFungibleResourceBalanceRaw(ctx, req, opts...)
	if err != nil {
		return lts.StateAccountFungibleResourceBalanceResponse{}, err
	}
	return resp.Value()
}

// LTSStateAccountAllFungibleResourceBalancesRaw returns the response of
// POST "/lts/state/account-all-fungible-resource-balances".
func (cli *Client) LTSStateAccountAllFungibleResourceBalancesRaw(ctx context.Context, req *lts.StateAccountAllFungibleResourceBalancesRequest, opts ...RequestOption) (*APIResponse[lts.StateAccountAllFungibleResourceBalancesResponse], error) {
	if req == nil {
		return nil, invalidRequest("account all fungible resource balances")
	}
	return postJSON[lts.StateAccountAllFungibleResourceBalancesResponse](ctx, cli, "/lts/state/account-all-fungible-resource-balances", req, opts)
}

// LTSStateAccountAllFungibleResourceBalances returns the balances of every
// fungible resource held by an account.
func (cli *Client) LTSStateAccountAllFungibleResourceBalances(ctx context.Context, req *lts.StateAccountAllFungibleResourceBalancesRequest, opts ...RequestOption) (lts.StateAccountAllFungibleResourceBalancesResponse, error) {
	resp, err := cli.LTSStateAccountAllFungibleResourceBalancesRaw(ctx, req, opts...)
	if err != nil {
		return lts.StateAccountAllFungibleResourceBalancesResponse{}, err
	}
	return resp.Value()
}
