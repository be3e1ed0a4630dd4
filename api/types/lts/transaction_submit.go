package lts

import "encoding/json"

// TransactionSubmitRequest is the request body for Core API:
// POST "/lts/transaction/submit"
type TransactionSubmitRequest struct {
	Network string `json:"network"`
	// NotarizedTransactionHex is the hex-encoded notarized transaction payload.
	NotarizedTransactionHex string `json:"notarized_transaction_hex"`
	// ForceRecalculate makes the node re-execute the payload even if it has
	// a cached rejection for it.
	ForceRecalculate *bool `json:"force_recalculate,omitempty"`
}

// TransactionSubmitResponse contains the response for Core API:
// POST "/lts/transaction/submit"
type TransactionSubmitResponse struct {
	// Duplicate is true if the payload was already in the node's mempool.
	Duplicate bool `json:"duplicate"`
}

// UnmarshalJSON fails if the required "duplicate" member is absent or null.
func (r *TransactionSubmitResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Duplicate *bool `json:"duplicate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Duplicate == nil {
		return missingField("TransactionSubmitResponse", "duplicate")
	}
	*r = TransactionSubmitResponse{Duplicate: *raw.Duplicate}
	return nil
}
