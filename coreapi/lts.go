package coreapi

import (
	"context"

	"code.cloudfoundry.org/clock"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
	"github.com/radixdlt/babylon-node-sub000/client"
)

// LTS holds the long-term-support operations of the Core API. Their request
// and response types only ever gain fields between node versions.
type LTS struct {
	client  client.LTSAPIClient
	network string
	clock   clock.Clock
}

func newLTS(cli client.LTSAPIClient, network string, clk clock.Clock) *LTS {
	return &LTS{client: cli, network: network, clock: clk}
}

// GetTransactionStatus returns the status of the transaction intent with the
// given hash, and of every payload of it the node knows about.
func (l *LTS) GetTransactionStatus(ctx context.Context, intentHash string, opts ...client.RequestOption) (lts.TransactionStatusResponse, error) {
	return l.client.LTSTransactionStatus(ctx, &lts.TransactionStatusRequest{
		Network:    l.network,
		IntentHash: intentHash,
	}, opts...)
}

// GetAccountFungibleResourceBalance returns the balance of one fungible
// resource in an account.
func (l *LTS) GetAccountFungibleResourceBalance(ctx context.Context, accountAddress, resourceAddress string, opts ...client.RequestOption) (lts.StateAccountFungibleResourceBalanceResponse, error) {
	return l.client.LTSStateAccountFungibleResourceBalance(ctx, &lts.StateAccountFungibleResourceBalanceRequest{
		Network:         l.network,
		AccountAddress:  accountAddress,
		ResourceAddress: resourceAddress,
	}, opts...)
}

// GetAccountAllFungibleResourceBalances returns the balances of every
// fungible resource held by an account.
func (l *LTS) GetAccountAllFungibleResourceBalances(ctx context.Context, accountAddress string, opts ...client.RequestOption) (lts.StateAccountAllFungibleResourceBalancesResponse, error) {
	return l.client.LTSStateAccountAllFungibleResourceBalances(ctx, &lts.StateAccountAllFungibleResourceBalancesRequest{
		Network:        l.network,
		AccountAddress: accountAddress,
	}, opts...)
}

// GetTransactionOutcomes returns up to limit outcomes of committed
// transactions, starting at fromStateVersion.
func (l *LTS) GetTransactionOutcomes(ctx context.Context, fromStateVersion int64, limit int, opts ...client.RequestOption) (lts.StreamTransactionOutcomesResponse, error) {
	return l.client.LTSStreamTransactionOutcomes(ctx, &lts.StreamTransactionOutcomesRequest{
		Network:          l.network,
		FromStateVersion: fromStateVersion,
		Limit:            limit,
	}, opts...)
}

// GetAccountTransactionOutcomes is like [LTS.GetTransactionOutcomes],
// restricted to the transactions that touched one account.
func (l *LTS) GetAccountTransactionOutcomes(ctx context.Context, accountAddress string, fromStateVersion int64, limit int, opts ...client.RequestOption) (lts.StreamAccountTransactionOutcomesResponse, error) {
	return l.client.LTSStreamAccountTransactionOutcomes(ctx, &lts.StreamAccountTransactionOutcomesRequest{
		Network:          l.network,
		AccountAddress:   accountAddress,
		FromStateVersion: fromStateVersion,
		Limit:            limit,
	}, opts...)
}
