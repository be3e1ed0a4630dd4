package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

// LTSTransactionConstructionRaw returns the response of
// POST "/lts/transaction/construction".
func (cli *Client) LTSTransactionConstructionRaw(ctx context.Context, req *lts.TransactionConstructionRequest, opts ...RequestOption) (*APIResponse[lts.TransactionConstructionResponse], error) {
	if req == nil {
		return nil, invalidRequest("transaction construction")
	}
	return postJSON[lts.TransactionConstructionResponse](ctx, cli, "/lts/transaction/construction", req, opts)
}

// LTSTransactionConstruction returns the current epoch and ledger clock,
// which are needed to build a transaction header.
func (cli *Client) LTSTransactionConstruction(ctx context.Context, req *lts.TransactionConstructionRequest, opts ...RequestOption) (lts.TransactionConstructionResponse, error) {
	resp, err := cli.LTSTransactionConstructionRaw(ctx, req, opts...)
	if err != nil {
		return lts.TransactionConstructionResponse{}, err
	}
	return resp.Value()
}
