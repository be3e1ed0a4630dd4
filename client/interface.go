package client

import (
	"context"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
	"github.com/radixdlt/babylon-node-sub000/api/types/status"
	"github.com/radixdlt/babylon-node-sub000/api/types/transaction"
)

// APIClient is an interface that clients that talk with a Core API server must implement.
type APIClient interface {
	LTSAPIClient
	StatusAPIClient
	TransactionAPIClient
	BaseURL() string
	Close() error
}

// Ensure that Client always implements APIClient.
var _ APIClient = &Client{}

// LTSAPIClient defines API client methods for the long-term-support endpoints.
type LTSAPIClient interface {
	LTSTransactionConstruction(ctx context.Context, req *lts.TransactionConstructionRequest, opts ...RequestOption) (lts.TransactionConstructionResponse, error)
	LTSTransactionSubmit(ctx context.Context, req *lts.TransactionSubmitRequest, opts ...RequestOption) (lts.TransactionSubmitResponse, error)
	LTSTransactionStatus(ctx context.Context, req *lts.TransactionStatusRequest, opts ...RequestOption) (lts.TransactionStatusResponse, error)
	LTSStateAccountFungibleResourceBalance(ctx context.Context, req *lts.StateAccountFungibleResourceBalanceRequest, opts ...RequestOption) (lts.StateAccountFungibleResourceBalanceResponse, error)
	LTSStateAccountAllFungibleResourceBalances(ctx context.Context, req *lts.StateAccountAllFungibleResourceBalancesRequest, opts ...RequestOption) (lts.StateAccountAllFungibleResourceBalancesResponse, error)
	LTSStreamTransactionOutcomes(ctx context.Context, req *lts.StreamTransactionOutcomesRequest, opts ...RequestOption) (lts.StreamTransactionOutcomesResponse, error)
	LTSStreamAccountTransactionOutcomes(ctx context.Context, req *lts.StreamAccountTransactionOutcomesRequest, opts ...RequestOption) (lts.StreamAccountTransactionOutcomesResponse, error)
}

// StatusAPIClient defines API client methods for the node status endpoints.
type StatusAPIClient interface {
	StatusNetworkConfiguration(ctx context.Context, opts ...RequestOption) (status.NetworkConfigurationResponse, error)
	StatusNetworkStatus(ctx context.Context, req *status.NetworkStatusRequest, opts ...RequestOption) (status.NetworkStatusResponse, error)
}

// TransactionAPIClient defines API client methods for the non-LTS transaction endpoints.
type TransactionAPIClient interface {
	TransactionSubmit(ctx context.Context, req *transaction.SubmitRequest, opts ...RequestOption) (transaction.SubmitResponse, error)
}
