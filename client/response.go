package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyResponseBody is returned by [JSONDecoder] when a successful
// response has no body.
var ErrEmptyResponseBody = errors.New("response body is empty")

// Decoder turns the body of a successful response into a value.
type Decoder[T any] func(body []byte) (T, error)

// APIResponse is a successful (2xx) response of the Core API. The body has
// been read in full; it is decoded on every call to [APIResponse.Value].
type APIResponse[T any] struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Header holds the response headers.
	Header http.Header

	body   []byte
	decode Decoder[T]
}

// NewAPIResponse reads the body of resp and returns an [APIResponse] that
// decodes it with decode. It does not close the body.
func NewAPIResponse[T any](resp *http.Response, decode Decoder[T]) (*APIResponse[T], error) {
	var body []byte
	if resp.Body != nil {
		var err error
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	}
	return &APIResponse[T]{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		body:       body,
		decode:     decode,
	}, nil
}

// Value decodes the response body. It returns the same result every time it
// is called.
func (r *APIResponse[T]) Value() (T, error) {
	return r.decode(r.body)
}

// Body returns a copy of the undecoded response body.
func (r *APIResponse[T]) Body() []byte {
	return bytes.Clone(r.body)
}

// validator is implemented by response types that have required members.
type validator interface {
	Validate() error
}

// JSONDecoder returns a [Decoder] that decodes a JSON body into T. Members
// that T does not know are ignored. If T has a Validate method, it is called
// on the decoded value.
func JSONDecoder[T any]() Decoder[T] {
	return func(body []byte) (T, error) {
		var v T
		if len(bytes.TrimSpace(body)) == 0 {
			return v, ErrEmptyResponseBody
		}
		if err := json.Unmarshal(body, &v); err != nil {
			return v, fmt.Errorf("error decoding %T response: %w", v, err)
		}
		if val, ok := any(&v).(validator); ok {
			if err := val.Validate(); err != nil {
				return v, fmt.Errorf("invalid %T response: %w", v, err)
			}
		}
		return v, nil
	}
}

// TextDecoder returns the body as a string.
func TextDecoder(body []byte) (string, error) {
	return string(body), nil
}

// BlobDecoder returns a copy of the body.
func BlobDecoder(body []byte) ([]byte, error) {
	return bytes.Clone(body), nil
}

// VoidDecoder ignores the body, for operations that return none.
func VoidDecoder(_ []byte) (struct{}, error) {
	return struct{}{}, nil
}
