// Package lts holds the request and response types of the long-term support
// ("/lts/") endpoints of the Core API. Only fields may be added to these
// types; existing fields keep their meaning across node versions.
package lts

import "github.com/radixdlt/babylon-node-sub000/api/types/common"

func missingField(typ, field string) error {
	return common.MissingFieldError{Type: typ, Field: field}
}
