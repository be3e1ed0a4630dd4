package coreapi

import (
	"context"
	"net/http"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

const (
	testAccount  = "account_rdx12xezaw0gn9yhld6kplyx4xhwm4nxvhq2jrd6gpvtwqzs3q0e5lndq8"
	testResource = "resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd"
)

func TestGetTransactionStatus(t *testing.T) {
	node := newMockNode(t)
	node.respond("/lts/transaction/status", http.StatusOK, `{"intent_status":"CommittedSuccess","status_description":"committed","committed_state_version":1234,"known_payloads":[{"payload_hash":"notarizedtransaction_rdx1abc","status":"CommittedSuccess"}]}`)
	api, _ := newTestAPI(t, node)

	resp, err := api.LTS.GetTransactionStatus(context.Background(), "txid_rdx1abc")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.IntentStatus, lts.IntentStatusCommittedSuccess))
	assert.Check(t, resp.IntentStatus.IsFinal())
	assert.Check(t, is.Equal(*resp.CommittedStateVersion, int64(1234)))
	assert.Check(t, is.Len(resp.KnownPayloads, 1))

	body := node.lastRequest().body
	assert.Check(t, is.Equal(body["network"], "mainnet"))
	assert.Check(t, is.Equal(body["intent_hash"], "txid_rdx1abc"))
}

func TestGetAccountFungibleResourceBalance(t *testing.T) {
	node := newMockNode(t)
	node.respond("/lts/state/account-fungible-resource-balance", http.StatusOK, `{"state_version":10,"account_address":"`+testAccount+`","fungible_resource_balance":{"fungible_resource_address":"`+testResource+`","amount":"100.5"}}`)
	api, _ := newTestAPI(t, node)

	resp, err := api.LTS.GetAccountFungibleResourceBalance(context.Background(), testAccount, testResource)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.FungibleResourceBalance.Amount, "100.5"))

	body := node.lastRequest().body
	assert.Check(t, is.Equal(body["network"], "mainnet"))
	assert.Check(t, is.Equal(body["account_address"], testAccount))
	assert.Check(t, is.Equal(body["resource_address"], testResource))
}

func TestGetAccountAllFungibleResourceBalances(t *testing.T) {
	node := newMockNode(t)
	node.respond("/lts/state/account-all-fungible-resource-balances", http.StatusOK, `{"state_version":10,"account_address":"`+testAccount+`","fungible_resource_balances":[{"fungible_resource_address":"`+testResource+`","amount":"1"}]}`)
	api, _ := newTestAPI(t, node)

	resp, err := api.LTS.GetAccountAllFungibleResourceBalances(context.Background(), testAccount)
	assert.NilError(t, err)
	assert.Check(t, is.Len(resp.FungibleResourceBalances, 1))

	body := node.lastRequest().body
	assert.Check(t, is.Equal(body["network"], "mainnet"))
	assert.Check(t, is.Equal(body["account_address"], testAccount))
}

func TestGetTransactionOutcomes(t *testing.T) {
	node := newMockNode(t)
	node.respond("/lts/stream/transaction-outcomes", http.StatusOK, `{"from_state_version":5,"count":0,"max_ledger_state_version":100,"committed_transaction_outcomes":[]}`)
	api, _ := newTestAPI(t, node)

	resp, err := api.LTS.GetTransactionOutcomes(context.Background(), 5, 20)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.MaxLedgerStateVersion, int64(100)))

	body := node.lastRequest().body
	assert.Check(t, is.Equal(body["network"], "mainnet"))
	assert.Check(t, is.Equal(body["from_state_version"], float64(5)))
	assert.Check(t, is.Equal(body["limit"], float64(20)))
}

func TestGetAccountTransactionOutcomes(t *testing.T) {
	node := newMockNode(t)
	node.respond("/lts/stream/account-transaction-outcomes", http.StatusOK, `{"from_state_version":1,"count":0,"max_ledger_state_version":100,"committed_transaction_outcomes":[]}`)
	api, _ := newTestAPI(t, node)

	_, err := api.LTS.GetAccountTransactionOutcomes(context.Background(), testAccount, 1, 10)
	assert.NilError(t, err)

	body := node.lastRequest().body
	assert.Check(t, is.Equal(body["account_address"], testAccount))
	assert.Check(t, is.Equal(body["from_state_version"], float64(1)))
	assert.Check(t, is.Equal(body["limit"], float64(10)))
}

func TestGetNetworkConfiguration(t *testing.T) {
	node := newMockNode(t).withNetwork("mainnet")
	api, _ := newTestAPI(t, node)

	resp, err := api.Status.GetNetworkConfiguration(context.Background())
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.Network, "mainnet"))
	assert.Check(t, is.Nil(node.lastRequest().body))
}
