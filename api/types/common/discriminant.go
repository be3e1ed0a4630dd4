package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON document")

// MissingDiscriminantError is returned when a tagged union is decoded from a
// JSON object that has no tag field.
type MissingDiscriminantError struct {
	Field string
}

func (e MissingDiscriminantError) Error() string {
	return fmt.Sprintf("missing discriminant field %q", e.Field)
}

// InvalidParameter marks this error as errdefs.ErrInvalidArgument.
func (e MissingDiscriminantError) InvalidParameter() {}

// UnknownDiscriminantError is returned when the tag of a tagged union names
// a variant this package does not know.
type UnknownDiscriminantError struct {
	Field string
	Value string
}

func (e UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("unknown value %q for discriminant field %q", e.Value, e.Field)
}

// InvalidParameter marks this error as errdefs.ErrInvalidArgument.
func (e UnknownDiscriminantError) InvalidParameter() {}

// discriminant returns the string value of the tag field of a JSON object.
func discriminant(data []byte, field string) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", errInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return "", fmt.Errorf("expected a JSON object, got %s", doc.Type)
	}
	tag := doc.Get(field)
	if !tag.Exists() || tag.Type != gjson.String {
		return "", MissingDiscriminantError{Field: field}
	}
	return tag.String(), nil
}

// isAbsent reports whether an optional JSON member was omitted or null.
func isAbsent(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// withTag encodes v, which must encode to a JSON object, with the tag field
// prepended.
func withTag(field, tag string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("cannot tag non-object JSON value with %q", field)
	}
	head, err := json.Marshal(map[string]string{field: tag})
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Write(head[:len(head)-1])
	if len(body) > 2 {
		out.WriteByte(',')
	}
	out.Write(body[1:])
	return out.Bytes(), nil
}
