package lts

import "github.com/radixdlt/babylon-node-sub000/api/types/common"

// TransactionConstructionRequest is the request body for Core API:
// POST "/lts/transaction/construction"
type TransactionConstructionRequest struct {
	Network string `json:"network"`
}

// TransactionConstructionResponse contains the response for Core API:
// POST "/lts/transaction/construction"
//
// It holds what a client needs to build a transaction header: the current
// epoch, and the node's view of the ledger clock.
type TransactionConstructionResponse struct {
	CurrentEpoch int64            `json:"current_epoch"`
	LedgerClock  common.InstantMs `json:"ledger_clock"`
}

// Validate checks that required members are present.
func (r TransactionConstructionResponse) Validate() error {
	if r.LedgerClock == (common.InstantMs{}) {
		return missingField("TransactionConstructionResponse", "ledger_clock")
	}
	return nil
}
