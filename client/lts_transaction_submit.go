package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

// LTSTransactionSubmitRaw returns the response of POST "/lts/transaction/submit".
func (cli *Client) LTSTransactionSubmitRaw(ctx context.Context, req *lts.TransactionSubmitRequest, opts ...RequestOption) (*APIResponse[lts.TransactionSubmitResponse], error) {
	if req == nil {
		return nil, invalidRequest("transaction submit")
	}
	return postJSON[lts.TransactionSubmitResponse](ctx, cli, "/lts/transaction/submit", req, opts)
}

// LTSTransactionSubmit submits a notarized transaction to the node's mempool.
//
// A rejected transaction is returned as a [*ResponseError] whose Envelope is
// a [*common.LtsTransactionSubmitErrorResponse].
func (cli *Client) LTSTransactionSubmit(ctx context.Context, req *lts.TransactionSubmitRequest, opts ...RequestOption) (lts.TransactionSubmitResponse, error) {
	resp, err := cli.LTSTransactionSubmitRaw(ctx, req, opts...)
	if err != nil {
		return lts.TransactionSubmitResponse{}, err
	}
	return resp.Value()
}
