package status

import "github.com/radixdlt/babylon-node-sub000/api/types/common"

// NetworkStatusRequest is the request body for Core API:
// POST "/status/network-status"
type NetworkStatusRequest struct {
	Network string `json:"network"`
}

// CommittedStateIdentifier identifies a committed ledger state.
type CommittedStateIdentifier struct {
	StateVersion        int64  `json:"state_version"`
	TransactionTreeHash string `json:"transaction_tree_hash"`
	ReceiptTreeHash     string `json:"receipt_tree_hash"`
	LedgerHash          string `json:"ledger_hash"`
}

type EpochRound struct {
	Epoch int64 `json:"epoch"`
	Round int64 `json:"round"`
}

// NetworkStatusResponse contains the response for Core API:
// POST "/status/network-status"
type NetworkStatusResponse struct {
	PreGenesisStateIdentifier  CommittedStateIdentifier  `json:"pre_genesis_state_identifier"`
	GenesisEpochRound          *EpochRound               `json:"genesis_epoch_round,omitempty"`
	PostGenesisStateIdentifier *CommittedStateIdentifier `json:"post_genesis_state_identifier,omitempty"`
	PostGenesisEpochRound      *EpochRound               `json:"post_genesis_epoch_round,omitempty"`
	CurrentStateIdentifier     CommittedStateIdentifier  `json:"current_state_identifier"`
	CurrentEpochRound          EpochRound                `json:"current_epoch_round"`
	CurrentProtocolVersion     string                    `json:"current_protocol_version,omitempty"`
}

// Validate checks that required members are present.
func (r NetworkStatusResponse) Validate() error {
	if r.CurrentStateIdentifier.LedgerHash == "" {
		return common.MissingFieldError{Type: "NetworkStatusResponse", Field: "current_state_identifier"}
	}
	return nil
}
