package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

// LTSStreamTransactionOutcomesRaw returns the response of
// POST "/lts/stream/transaction-outcomes".
func (cli *Client) LTSStreamTransactionOutcomesRaw(ctx context.Context, req *lts.StreamTransactionOutcomesRequest, opts ...RequestOption) (*APIResponse[lts.StreamTransactionOutcomesResponse], error) {
	if req == nil {
		return nil, invalidRequest("stream transaction outcomes")
	}
	return postJSON[lts.StreamTransactionOutcomesResponse](ctx, cli, "/lts/stream/transaction-outcomes", req, opts)
}

// LTSStreamTransactionOutcomes returns the outcomes of committed
// transactions, starting at the requested state version.
//
// A request beyond the top of the ledger is returned as a [*ResponseError]
// whose Envelope is a [*common.StreamTransactionsErrorResponse].
func (cli *Client) LTSStreamTransactionOutcomes(ctx context.Context, req *lts.StreamTransactionOutcomesRequest, opts ...RequestOption) (lts.StreamTransactionOutcomesResponse, error) {
	resp, err := cli.LTSStreamTransactionOutcomesRaw(ctx, req, opts...)
	if err != nil {
		return lts.StreamTransactionOutcomesResponse{}, err
	}
	return resp.Value()
}

// LTSStreamAccountTransactionOutcomesRaw returns the response of
// POST "/lts/stream/account-transaction-outcomes".
func (cli *Client) LTSStreamAccountTransactionOutcomesRaw(ctx context.Context, req *lts.StreamAccountTransactionOutcomesRequest, opts ...RequestOption) (*APIResponse[lts.StreamAccountTransactionOutcomesResponse], error) {
	if req == nil {
		return nil, invalidRequest("stream account transaction outcomes")
	}
	return postJSON[lts.StreamAccountTransactionOutcomesResponse](ctx, cli, "/lts/stream/account-transaction-outcomes", req, opts)
}

// LTSStreamAccountTransactionOutcomes is like [Client.LTSStreamTransactionOutcomes],
// restricted to the transactions that touched one account.
func (cli *Client) LTSStreamAccountTransactionOutcomes(ctx context.Context, req *lts.StreamAccountTransactionOutcomesRequest, opts ...RequestOption) (lts.StreamAccountTransactionOutcomesResponse, error) {
	resp, err := cli.LTSStreamAccountTransactionOutcomesRaw(ctx, req, opts...)
	if err != nil {
		return lts.StreamAccountTransactionOutcomesResponse{}, err
	}
	return resp.Value()
}
