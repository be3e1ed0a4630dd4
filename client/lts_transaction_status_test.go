package client

import (
	"context"
	"net/http"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

func TestLTSTransactionStatusError(t *testing.T) {
	client := newTestClient(t, errorMock(http.StatusInternalServerError, "Server error"))

	_, err := client.LTSTransactionStatus(context.Background(), &lts.TransactionStatusRequest{Network: "mainnet", IntentHash: "txid_rdx1"})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))
	assert.Check(t, is.ErrorContains(err, "Server error"))
}

func TestLTSTransactionStatus(t *testing.T) {
	const expectedURL = "/core/lts/transaction/status"
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		var got lts.TransactionStatusRequest
		if err := assertRequest(req, expectedURL, &got); err != nil {
			return nil, err
		}
		assert.Check(t, is.DeepEqual(got, lts.TransactionStatusRequest{Network: "mainnet", IntentHash: "txid_rdx1abc"}))
		return mockResponse(http.StatusOK, nil, `{
			"intent_status": "CommittedSuccess",
			"status_description": "The transaction has been committed successfully.",
			"committed_state_version": 12345,
			"known_payloads": [
				{"payload_hash": "notarizedtransaction_rdx1", "status": "CommittedSuccess"}
			]
		}`)(req)
	})

	resp, err := client.LTSTransactionStatus(context.Background(), &lts.TransactionStatusRequest{Network: "mainnet", IntentHash: "txid_rdx1abc"})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.IntentStatus, lts.IntentStatusCommittedSuccess))
	assert.Check(t, resp.IntentStatus.IsFinal())
	assert.Check(t, is.Equal(*resp.CommittedStateVersion, int64(12345)))
	assert.Check(t, is.Len(resp.KnownPayloads, 1))
	assert.Check(t, is.Equal(resp.KnownPayloads[0].Status, lts.PayloadStatusCommittedSuccess))
}

func TestLTSTransactionStatusMissingIntentStatus(t *testing.T) {
	client := newTestClient(t, mockResponse(http.StatusOK, nil, `{"status_description":"?"}`))

	_, err := client.LTSTransactionStatus(context.Background(), &lts.TransactionStatusRequest{Network: "mainnet"})
	assert.Check(t, is.ErrorContains(err, `missing required field "intent_status"`))
}
