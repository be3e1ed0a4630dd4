package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

// LTSTransactionStatusRaw returns the response of POST "/lts/transaction/status".
func (cli *Client) LTSTransactionStatusRaw(ctx context.Context, req *lts.TransactionStatusRequest, opts ...RequestOption) (*APIResponse[lts.TransactionStatusResponse], error) {
	if req == nil {
		return nil, invalidRequest("transaction status")
	}
	return postJSON[lts.TransactionStatusResponse](ctx, cli, "/lts/transaction/status", req, opts)
}

// LTSTransactionStatus returns the status of a transaction intent, and of
// every payload of it the node knows about.
func (cli *Client) LTSTransactionStatus(ctx context.Context, req *lts.TransactionStatusRequest, opts ...RequestOption) (lts.TransactionStatusResponse, error) {
	resp, err := cli.LTSTransactionStatusRaw(ctx, req, opts...)
	if err != nil {
		return lts.TransactionStatusResponse{}, err
	}
	return resp.Value()
}
