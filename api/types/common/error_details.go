package common

import (
	"encoding/json"
	"fmt"
)

// ErrorDetailsType is the discriminant of the "details" member of an error
// response, carried in its "type" field.
type ErrorDetailsType string

const (
	ErrorDetailsTypeRejected                         ErrorDetailsType = "Rejected"
	ErrorDetailsTypePriorityThresholdNotMet          ErrorDetailsType = "PriorityThresholdNotMet"
	ErrorDetailsTypeRequestedStateVersionOutOfBounds ErrorDetailsType = "RequestedStateVersionOutOfBounds"
)

// LtsTransactionSubmitErrorDetails is the "details" member of a
// [LtsTransactionSubmitErrorResponse]. Its implementations are
// [*LtsTransactionSubmitRejectedErrorDetails] and
// [*LtsTransactionSubmitPriorityThresholdNotMetErrorDetails].
type LtsTransactionSubmitErrorDetails interface {
	DetailsType() ErrorDetailsType

	isLtsTransactionSubmitErrorDetails()
}

// LtsTransactionSubmitRejectedErrorDetails describes a transaction the node
// rejected when it was executed against the current ledger state.
type LtsTransactionSubmitRejectedErrorDetails struct {
	// ErrorMessage is the reason for the rejection.
	ErrorMessage string `json:"error_message"`
	// IsFresh is false if the rejection was read from the node's cache of
	// recent results rather than from a new execution.
	IsFresh bool `json:"is_fresh"`
	// IsPayloadRejectionPermanent is true if this payload can never be
	// committed.
	IsPayloadRejectionPermanent bool `json:"is_payload_rejection_permanent"`
	// IsIntentRejectionPermanent is true if no payload containing this
	// intent can ever be committed.
	IsIntentRejectionPermanent bool `json:"is_intent_rejection_permanent"`
	// IsRejectedBecauseIntentAlreadyCommitted is true if the intent has
	// already been committed, by this payload or by another one.
	IsRejectedBecauseIntentAlreadyCommitted bool `json:"is_rejected_because_intent_already_committed"`
	// RetryFromTimestamp is set if the rejection is transient and the node
	// will not re-execute the payload before that time.
	RetryFromTimestamp *InstantMs `json:"retry_from_timestamp,omitempty"`
	// RetryFromEpoch is set if the rejection is transient and the node will
	// not re-execute the payload before that epoch.
	RetryFromEpoch *int64 `json:"retry_from_epoch,omitempty"`
	// InvalidFromEpoch is the epoch from which the intent is invalid, if known.
	InvalidFromEpoch *int64 `json:"invalid_from_epoch,omitempty"`
}

func (*LtsTransactionSubmitRejectedErrorDetails) DetailsType() ErrorDetailsType {
	return ErrorDetailsTypeRejected
}
func (*LtsTransactionSubmitRejectedErrorDetails) isLtsTransactionSubmitErrorDetails() {}

func (d LtsTransactionSubmitRejectedErrorDetails) MarshalJSON() ([]byte, error) {
	type plain LtsTransactionSubmitRejectedErrorDetails
	return withTag("type", string(ErrorDetailsTypeRejected), plain(d))
}

// LtsTransactionSubmitPriorityThresholdNotMetErrorDetails is returned when the
// mempool is full and the transaction's tip is too low to displace another
// transaction.
type LtsTransactionSubmitPriorityThresholdNotMetErrorDetails struct {
	TipPercentage            *int    `json:"tip_percentage,omitempty"`
	MinTipPercentageRequired *int    `json:"min_tip_percentage_required,omitempty"`
	TipProportion            *string `json:"tip_proportion,omitempty"`
	MinTipProportionRequired *string `json:"min_tip_proportion_required,omitempty"`
}

func (*LtsTransactionSubmitPriorityThresholdNotMetErrorDetails) DetailsType() ErrorDetailsType {
	return ErrorDetailsTypePriorityThresholdNotMet
}
func (*LtsTransactionSubmitPriorityThresholdNotMetErrorDetails) isLtsTransactionSubmitErrorDetails() {
}

func (d LtsTransactionSubmitPriorityThresholdNotMetErrorDetails) MarshalJSON() ([]byte, error) {
	type plain LtsTransactionSubmitPriorityThresholdNotMetErrorDetails
	return withTag("type", string(ErrorDetailsTypePriorityThresholdNotMet), plain(d))
}

// DecodeLtsTransactionSubmitErrorDetails decodes the "details" member of a
// [LtsTransactionSubmitErrorResponse].
func DecodeLtsTransactionSubmitErrorDetails(data []byte) (LtsTransactionSubmitErrorDetails, error) {
	tag, err := discriminant(data, "type")
	if err != nil {
		return nil, err
	}
	var v LtsTransactionSubmitErrorDetails
	switch ErrorDetailsType(tag) {
	case ErrorDetailsTypeRejected:
		v = &LtsTransactionSubmitRejectedErrorDetails{}
	case ErrorDetailsTypePriorityThresholdNotMet:
		v = &LtsTransactionSubmitPriorityThresholdNotMetErrorDetails{}
	default:
		return nil, UnknownDiscriminantError{Field: "details.type", Value: tag}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("invalid %s error details: %w", tag, err)
	}
	return v, nil
}

// TransactionSubmitErrorDetails is the "details" member of a
// [TransactionSubmitErrorResponse]. Its implementations are
// [*TransactionSubmitRejectedErrorDetails] and
// [*TransactionSubmitPriorityThresholdNotMetErrorDetails].
type TransactionSubmitErrorDetails interface {
	DetailsType() ErrorDetailsType

	isTransactionSubmitErrorDetails()
}

// CommittedIntentMetadata identifies the payload that committed an intent.
type CommittedIntentMetadata struct {
	StateVersion      int64  `json:"state_version"`
	PayloadHash       string `json:"payload_hash"`
	IsSameTransaction bool   `json:"is_same_transaction"`
}

// TransactionSubmitRejectedErrorDetails has the same meaning as
// [LtsTransactionSubmitRejectedErrorDetails], and also identifies the
// committed payload when the intent was already committed.
type TransactionSubmitRejectedErrorDetails struct {
	ErrorMessage                            string                   `json:"error_message"`
	IsFresh                                 bool                     `json:"is_fresh"`
	IsPayloadRejectionPermanent             bool                     `json:"is_payload_rejection_permanent"`
	IsIntentRejectionPermanent              bool                     `json:"is_intent_rejection_permanent"`
	IsRejectedBecauseIntentAlreadyCommitted bool                     `json:"is_rejected_because_intent_already_committed"`
	IntentAlreadyCommittedAs                *CommittedIntentMetadata `json:"intent_already_committed_as,omitempty"`
	RetryFromTimestamp                      *InstantMs               `json:"retry_from_timestamp,omitempty"`
	RetryFromEpoch                          *int64                   `json:"retry_from_epoch,omitempty"`
	InvalidFromEpoch                        *int64                   `json:"invalid_from_epoch,omitempty"`
}

func (*TransactionSubmitRejectedErrorDetails) DetailsType() ErrorDetailsType {
	return ErrorDetailsTypeRejected
}
func (*TransactionSubmitRejectedErrorDetails) isTransactionSubmitErrorDetails() {}

func (d TransactionSubmitRejectedErrorDetails) MarshalJSON() ([]byte, error) {
	type plain TransactionSubmitRejectedErrorDetails
	return withTag("type", string(ErrorDetailsTypeRejected), plain(d))
}

type TransactionSubmitPriorityThresholdNotMetErrorDetails struct {
	TipPercentage            *int    `json:"tip_percentage,omitempty"`
	MinTipPercentageRequired *int    `json:"min_tip_percentage_required,omitempty"`
	TipProportion            *string `json:"tip_proportion,omitempty"`
	MinTipProportionRequired *string `json:"min_tip_proportion_required,omitempty"`
}

func (*TransactionSubmitPriorityThresholdNotMetErrorDetails) DetailsType() ErrorDetailsType {
	return ErrorDetailsTypePriorityThresholdNotMet
}
func (*TransactionSubmitPriorityThresholdNotMetErrorDetails) isTransactionSubmitErrorDetails() {}

func (d TransactionSubmitPriorityThresholdNotMetErrorDetails) MarshalJSON() ([]byte, error) {
	type plain TransactionSubmitPriorityThresholdNotMetErrorDetails
	return withTag("type", string(ErrorDetailsTypePriorityThresholdNotMet), plain(d))
}

// DecodeTransactionSubmitErrorDetails decodes the "details" member of a
// [TransactionSubmitErrorResponse].
func DecodeTransactionSubmitErrorDetails(data []byte) (TransactionSubmitErrorDetails, error) {
	tag, err := discriminant(data, "type")
	if err != nil {
		return nil, err
	}
	var v TransactionSubmitErrorDetails
	switch ErrorDetailsType(tag) {
	case ErrorDetailsTypeRejected:
		v = &TransactionSubmitRejectedErrorDetails{}
	case ErrorDetailsTypePriorityThresholdNotMet:
		v = &TransactionSubmitPriorityThresholdNotMetErrorDetails{}
	default:
		return nil, UnknownDiscriminantError{Field: "details.type", Value: tag}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("invalid %s error details: %w", tag, err)
	}
	return v, nil
}

// StreamTransactionsErrorDetails is the "details" member of a
// [StreamTransactionsErrorResponse].
type StreamTransactionsErrorDetails interface {
	DetailsType() ErrorDetailsType

	isStreamTransactionsErrorDetails()
}

// RequestedStateVersionOutOfBoundsErrorDetails is returned when a stream is
// requested from a state version beyond the top of the ledger.
type RequestedStateVersionOutOfBoundsErrorDetails struct {
	MaxLedgerStateVersion int64 `json:"max_ledger_state_version"`
}

func (*RequestedStateVersionOutOfBoundsErrorDetails) DetailsType() ErrorDetailsType {
	return ErrorDetailsTypeRequestedStateVersionOutOfBounds
}
func (*RequestedStateVersionOutOfBoundsErrorDetails) isStreamTransactionsErrorDetails() {}

func (d RequestedStateVersionOutOfBoundsErrorDetails) MarshalJSON() ([]byte, error) {
	type plain RequestedStateVersionOutOfBoundsErrorDetails
	return withTag("type", string(ErrorDetailsTypeRequestedStateVersionOutOfBounds), plain(d))
}

// DecodeStreamTransactionsErrorDetails decodes the "details" member of a
// [StreamTransactionsErrorResponse].
func DecodeStreamTransactionsErrorDetails(data []byte) (StreamTransactionsErrorDetails, error) {
	tag, err := discriminant(data, "type")
	if err != nil {
		return nil, err
	}
	switch ErrorDetailsType(tag) {
	case ErrorDetailsTypeRequestedStateVersionOutOfBounds:
		var v RequestedStateVersionOutOfBoundsErrorDetails
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid %s error details: %w", tag, err)
		}
		return &v, nil
	default:
		return nil, UnknownDiscriminantError{Field: "details.type", Value: tag}
	}
}

