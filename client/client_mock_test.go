package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/radixdlt/babylon-node-sub000/api/types/common"
)

const testBaseURL = "http://localhost:3333/core"

// transportFunc allows us to inject a mock transport for testing.
type transportFunc func(*http.Request) (*http.Response, error)

func (tf transportFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return tf(req)
}

func newMockClient(doer func(*http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: transportFunc(doer),
	}
}

// newTestClient returns a Client for testBaseURL that sends every request to doer.
func newTestClient(t *testing.T, doer func(*http.Request) (*http.Response, error), ops ...Opt) *Client {
	t.Helper()
	cli, err := NewClientWithOpts(append([]Opt{
		WithBaseURL(testBaseURL),
		WithHTTPClient(newMockClient(doer)),
	}, ops...)...)
	assert.NilError(t, err)
	return cli
}

func mockResponse(statusCode int, header http.Header, body string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		if header == nil {
			header = http.Header{}
		}
		return &http.Response{
			StatusCode: statusCode,
			Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
			Header:     header,
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		}, nil
	}
}

func mockJSONResponse(statusCode int, v any) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		header := http.Header{}
		header.Set("Content-Type", "application/json")
		return mockResponse(statusCode, header, string(b))(req)
	}
}

// errorMock returns a Basic error body with the given status and message.
func errorMock(statusCode int, message string) func(req *http.Request) (*http.Response, error) {
	return mockJSONResponse(statusCode, &common.BasicErrorResponse{
		ErrorResponseBase: common.ErrorResponseBase{
			Code:    statusCode,
			Message: message,
		},
	})
}

func plainTextErrorMock(statusCode int, message string) func(req *http.Request) (*http.Response, error) {
	header := http.Header{}
	header.Set("Content-Type", "text/plain")
	return mockResponse(statusCode, header, message)
}

// assertRequest checks the method and path of req, and decodes its JSON
// body into v if v is not nil.
func assertRequest(req *http.Request, expectedPath string, v any) error {
	if req.Method != http.MethodPost {
		return fmt.Errorf("expected POST method, got %s", req.Method)
	}
	if req.URL.Path != expectedPath {
		return fmt.Errorf("expected URL '%s', got '%s'", expectedPath, req.URL.Path)
	}
	if v == nil {
		return nil
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		return fmt.Errorf("expected Content-Type application/json, got %q", ct)
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.NewDecoder(bytes.NewReader(b)).Decode(v)
}
