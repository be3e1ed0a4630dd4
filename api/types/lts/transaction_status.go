package lts

// TransactionIntentStatus is the node's view of the fate of a transaction
// intent.
type TransactionIntentStatus string

const (
	IntentStatusCommittedSuccess                TransactionIntentStatus = "CommittedSuccess"
	IntentStatusCommittedFailure                TransactionIntentStatus = "CommittedFailure"
	IntentStatusInMempool                       TransactionIntentStatus = "InMempool"
	IntentStatusNotSeen                         TransactionIntentStatus = "NotSeen"
	IntentStatusPermanentRejection              TransactionIntentStatus = "PermanentRejection"
	IntentStatusFateUncertain                   TransactionIntentStatus = "FateUncertain"
	IntentStatusFateUncertainButLikelyRejection TransactionIntentStatus = "FateUncertainButLikelyRejection"
)

// IsFinal reports whether the intent can no longer change status.
func (s TransactionIntentStatus) IsFinal() bool {
	switch s {
	case IntentStatusCommittedSuccess, IntentStatusCommittedFailure, IntentStatusPermanentRejection:
		return true
	default:
		return false
	}
}

// TransactionPayloadStatus is the node's view of one payload of an intent.
type TransactionPayloadStatus string

const (
	PayloadStatusCommittedSuccess    TransactionPayloadStatus = "CommittedSuccess"
	PayloadStatusCommittedFailure    TransactionPayloadStatus = "CommittedFailure"
	PayloadStatusInMempool           TransactionPayloadStatus = "InMempool"
	PayloadStatusNotInMempool        TransactionPayloadStatus = "NotInMempool"
	PayloadStatusPermanentlyRejected TransactionPayloadStatus = "PermanentlyRejected"
	PayloadStatusTransientlyRejected TransactionPayloadStatus = "TransientlyRejected"
)

// TransactionStatusRequest is the request body for Core API:
// POST "/lts/transaction/status"
type TransactionStatusRequest struct {
	Network    string `json:"network"`
	IntentHash string `json:"intent_hash"`
}

// TransactionPayloadDetails describes one known payload of an intent.
type TransactionPayloadDetails struct {
	PayloadHash  string                   `json:"payload_hash"`
	Status       TransactionPayloadStatus `json:"status"`
	ErrorMessage string                   `json:"error_message,omitempty"`
}

// TransactionStatusResponse contains the response for Core API:
// POST "/lts/transaction/status"
type TransactionStatusResponse struct {
	IntentStatus      TransactionIntentStatus `json:"intent_status"`
	StatusDescription string                  `json:"status_description"`
	// CommittedStateVersion is set if the intent has been committed.
	CommittedStateVersion *int64 `json:"committed_state_version,omitempty"`
	// InvalidFromEpoch is set if the intent is still pending and its expiry
	// epoch is known.
	InvalidFromEpoch *int64                      `json:"invalid_from_epoch,omitempty"`
	KnownPayloads    []TransactionPayloadDetails `json:"known_payloads"`
}

// Validate checks that required members are present.
func (r TransactionStatusResponse) Validate() error {
	if r.IntentStatus == "" {
		return missingField("TransactionStatusResponse", "intent_status")
	}
	return nil
}
