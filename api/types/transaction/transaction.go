// Package transaction holds the request and response types of the
// "/transaction/" endpoints of the Core API. Unlike the "/lts/" endpoints,
// these may change between node versions.
package transaction

import (
	"encoding/json"

	"github.com/radixdlt/babylon-node-sub000/api/types/common"
)

// SubmitRequest is the request body for Core API:
// POST "/transaction/submit"
type SubmitRequest struct {
	Network                 string `json:"network"`
	NotarizedTransactionHex string `json:"notarized_transaction_hex"`
	ForceRecalculate        *bool  `json:"force_recalculate,omitempty"`
}

// SubmitResponse contains the response for Core API:
// POST "/transaction/submit"
type SubmitResponse struct {
	Duplicate bool `json:"duplicate"`
}

// UnmarshalJSON fails if the required "duplicate" member is absent or null.
func (r *SubmitResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Duplicate *bool `json:"duplicate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Duplicate == nil {
		return common.MissingFieldError{Type: "SubmitResponse", Field: "duplicate"}
	}
	*r = SubmitResponse{Duplicate: *raw.Duplicate}
	return nil
}
