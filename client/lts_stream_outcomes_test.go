package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/radixdlt/babylon-node-sub000/api/types/common"
	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

func TestLTSStreamTransactionOutcomes(t *testing.T) {
	const expectedURL = "/core/lts/stream/transaction-outcomes"
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		var got lts.StreamTransactionOutcomesRequest
		if err := assertRequest(req, expectedURL, &got); err != nil {
			return nil, err
		}
		assert.Check(t, is.DeepEqual(got, lts.StreamTransactionOutcomesRequest{Network: "mainnet", FromStateVersion: 1, Limit: 2}))
		return mockResponse(http.StatusOK, nil, `{
			"from_state_version": 1,
			"count": 1,
			"max_ledger_state_version": 500,
			"committed_transaction_outcomes": [{
				"state_version": 1,
				"proposer_timestamp_ms": 1700000000000,
				"accumulator_hash": "aa",
				"user_transaction_identifiers": {"intent_hash": "txid_rdx1", "signed_intent_hash": "signedintent_rdx1", "payload_hash": "notarizedtransaction_rdx1"},
				"status": "Success",
				"fungible_entity_balance_changes": [{
					"entity_address": "account_rdx1",
					"fee_balance_changes": [{"type": "FeePayment", "fungible_resource_address": "resource_rdx1xrd", "balance_change": "-0.25"}],
					"non_fee_balance_changes": []
				}],
				"resultant_account_fungible_balances": [],
				"total_fee": "0.25"
			}]
		}`)(req)
	})

	resp, err := client.LTSStreamTransactionOutcomes(context.Background(), &lts.StreamTransactionOutcomesRequest{Network: "mainnet", FromStateVersion: 1, Limit: 2})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.Count, 1))
	assert.Check(t, is.Equal(resp.MaxLedgerStateVersion, int64(500)))
	assert.Assert(t, is.Len(resp.CommittedTransactionOutcomes, 1))
	outcome := resp.CommittedTransactionOutcomes[0]
	assert.Check(t, is.Equal(outcome.Status, lts.CommittedTransactionStatusSuccess))
	assert.Check(t, is.Equal(outcome.UserTransactionIdentifiers.IntentHash, "txid_rdx1"))
	assert.Check(t, is.Equal(outcome.FungibleEntityBalanceChanges[0].FeeBalanceChanges[0].Type, lts.FeePayment))
}

func TestLTSStreamTransactionOutcomesOutOfBounds(t *testing.T) {
	client := newTestClient(t, mockJSONResponse(http.StatusBadRequest, &common.StreamTransactionsErrorResponse{
		ErrorResponseBase: common.ErrorResponseBase{Code: 400, Message: "Requested state version out of bounds"},
		Details:           &common.RequestedStateVersionOutOfBoundsErrorDetails{MaxLedgerStateVersion: 500},
	}))

	_, err := client.LTSStreamTransactionOutcomes(context.Background(), &lts.StreamTransactionOutcomesRequest{Network: "mainnet", FromStateVersion: 1000, Limit: 1})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))

	var respErr *ResponseError
	assert.Assert(t, errors.As(err, &respErr))
	env, ok := respErr.Envelope.(*common.StreamTransactionsErrorResponse)
	assert.Assert(t, ok, "unexpected envelope %T", respErr.Envelope)
	details, ok := env.Details.(*common.RequestedStateVersionOutOfBoundsErrorDetails)
	assert.Assert(t, ok, "unexpected details %T", env.Details)
	assert.Check(t, is.Equal(details.MaxLedgerStateVersion, int64(500)))
}

func TestLTSStreamAccountTransactionOutcomes(t *testing.T) {
	const expectedURL = "/core/lts/stream/account-transaction-outcomes"
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		var got lts.StreamAccountTransactionOutcomesRequest
		if err := assertRequest(req, expectedURL, &got); err != nil {
			return nil, err
		}
		assert.Check(t, is.Equal(got.AccountAddress, "account_rdx1"))
		return mockResponse(http.StatusOK, nil, `{"from_state_version":10,"count":0,"max_ledger_state_version":10,"committed_transaction_outcomes":[]}`)(req)
	})

	resp, err := client.LTSStreamAccountTransactionOutcomes(context.Background(), &lts.StreamAccountTransactionOutcomesRequest{
		Network:          "mainnet",
		AccountAddress:   "account_rdx1",
		FromStateVersion: 10,
		Limit:            100,
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.Count, 0))
	assert.Check(t, is.Len(resp.CommittedTransactionOutcomes, 0))
}
