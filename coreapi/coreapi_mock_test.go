package coreapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"gotest.tools/v3/assert"
)

const testBaseURL = "http://localhost:3333/core"

type transportFunc func(*http.Request) (*http.Response, error)

func (tf transportFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return tf(req)
}

// mockNode answers requests by path. Requests to other paths fail.
type mockNode struct {
	t        *testing.T
	handlers map[string]func(req *http.Request, body map[string]any) (*http.Response, error)
	requests []recordedRequest
}

type recordedRequest struct {
	path string
	body map[string]any
}

func newMockNode(t *testing.T) *mockNode {
	return &mockNode{
		t:        t,
		handlers: map[string]func(*http.Request, map[string]any) (*http.Response, error){},
	}
}

func (n *mockNode) handle(path string, h func(req *http.Request, body map[string]any) (*http.Response, error)) {
	n.handlers["/core"+path] = h
}

func (n *mockNode) respond(path string, statusCode int, body string) {
	n.handle(path, func(req *http.Request, _ map[string]any) (*http.Response, error) {
		return response(req, statusCode, body), nil
	})
}

func (n *mockNode) withNetwork(network string) *mockNode {
	n.respond("/status/network-configuration", http.StatusOK, fmt.Sprintf(`{"network":%q,"network_id":1,"version":{"core_version":"v1.0.0","api_version":"v1.0.0"}}`, network))
	return n
}

func (n *mockNode) RoundTrip(req *http.Request) (*http.Response, error) {
	var body map[string]any
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		if len(b) > 0 {
			if err := json.Unmarshal(b, &body); err != nil {
				return nil, err
			}
		}
	}
	n.requests = append(n.requests, recordedRequest{path: req.URL.Path, body: body})
	h, ok := n.handlers[req.URL.Path]
	if !ok {
		return nil, fmt.Errorf("unexpected request to %s", req.URL.Path)
	}
	return h(req, body)
}

func (n *mockNode) lastRequest() recordedRequest {
	n.t.Helper()
	assert.Assert(n.t, len(n.requests) > 0, "no request was made")
	return n.requests[len(n.requests)-1]
}

func response(req *http.Request, statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

var testNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// newTestAPI returns a CoreAPI for "mainnet" talking to node, with network
// validation skipped and a fake clock set to testNow.
func newTestAPI(t *testing.T, node *mockNode) (*CoreAPI, *fakeclock.FakeClock) {
	t.Helper()
	clk := fakeclock.NewFakeClock(testNow)
	api, err := New(context.Background(), Config{
		BaseURL:               testBaseURL,
		LogicalNetworkName:    "mainnet",
		HTTPClient:            &http.Client{Transport: node},
		SkipNetworkValidation: true,
		Clock:                 clk,
	})
	assert.NilError(t, err)
	return api, clk
}
