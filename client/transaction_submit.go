package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/transaction"
)

// TransactionSubmitRaw returns the response of POST "/transaction/submit".
func (cli *Client) TransactionSubmitRaw(ctx context.Context, req *transaction.SubmitRequest, opts ...RequestOption) (*APIResponse[transaction.SubmitResponse], error) {
	if req == nil {
		return nil, invalidRequest("transaction submit")
	}
	return postJSON[transaction.SubmitResponse](ctx, cli, "/transaction/submit", req, opts)
}

// TransactionSubmit submits a notarized transaction through the non-LTS
// endpoint, whose rejection details also identify an already committed intent.
func (cli *Client) TransactionSubmit(ctx context.Context, req *transaction.SubmitRequest, opts ...RequestOption) (transaction.SubmitResponse, error) {
	resp, err := cli.TransactionSubmitRaw(ctx, req, opts...)
	if err != nil {
		return transaction.SubmitResponse{}, err
	}
	return resp.Value()
}
