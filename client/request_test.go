package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
)

func TestPostJSONBody(t *testing.T) {
	var got lts.TransactionSubmitRequest
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		if err := assertRequest(req, "/core/lts/transaction/submit", &got); err != nil {
			return nil, err
		}
		assert.Check(t, is.Equal(req.URL.Scheme, "http"))
		assert.Check(t, is.Equal(req.URL.Host, "localhost:3333"))
		return mockResponse(http.StatusOK, nil, `{"duplicate":false}`)(req)
	})

	_, err := client.LTSTransactionSubmit(context.Background(), &lts.TransactionSubmitRequest{
		Network:                 "mainnet",
		NotarizedTransactionHex: "4d22",
	})
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(got, lts.TransactionSubmitRequest{
		Network:                 "mainnet",
		NotarizedTransactionHex: "4d22",
	}))
}

func TestPostWithoutBody(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		if err := assertRequest(req, "/core/status/network-configuration", nil); err != nil {
			return nil, err
		}
		if req.Body != nil && req.Body != http.NoBody {
			b, _ := io.ReadAll(req.Body)
			if len(b) > 0 {
				return nil, errors.New("expected no request body")
			}
		}
		if ct := req.Header.Get("Content-Type"); ct != "" {
			return nil, errors.New("expected no Content-Type, got " + ct)
		}
		return mockResponse(http.StatusOK, nil, `{"network":"stokenet","network_id":2}`)(req)
	})

	resp, err := client.StatusNetworkConfiguration(context.Background())
	assert.NilError(t, err)
	assert.Check(t, is.Equal(resp.Network, "stokenet"))
}

func TestNilRequest(t *testing.T) {
	client := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return nil, errors.New("should not make request")
	})

	_, err := client.LTSTransactionSubmit(context.Background(), nil)
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
	assert.Check(t, is.ErrorContains(err, "request must not be nil"))
}

func TestBaseURLPath(t *testing.T) {
	testCases := []struct {
		baseURL      string
		expectedPath string
	}{
		{baseURL: "http://localhost:3333/core", expectedPath: "/core/lts/transaction/construction"},
		{baseURL: "http://localhost:3333/core/", expectedPath: "/core/lts/transaction/construction"},
		{baseURL: "https://node.example.com", expectedPath: "/lts/transaction/construction"},
	}
	for _, tc := range testCases {
		t.Run(tc.baseURL, func(t *testing.T) {
			client, err := NewClientWithOpts(
				WithBaseURL(tc.baseURL),
				WithHTTPClient(newMockClient(func(req *http.Request) (*http.Response, error) {
					if err := assertRequest(req, tc.expectedPath, nil); err != nil {
						return nil, err
					}
					return mockResponse(http.StatusOK, nil, `{"current_epoch":1,"ledger_clock":{"unix_timestamp_ms":1,"date_time":"1970-01-01T00:00:00.001Z"}}`)(req)
				})),
			)
			assert.NilError(t, err)
			_, err = client.LTSTransactionConstruction(context.Background(), &lts.TransactionConstructionRequest{Network: "mainnet"})
			assert.NilError(t, err)
		})
	}
}

func TestHeaderPrecedence(t *testing.T) {
	var got http.Header
	doer := func(req *http.Request) (*http.Response, error) {
		got = req.Header.Clone()
		return mockResponse(http.StatusOK, nil, `{"duplicate":true}`)(req)
	}
	req := &lts.TransactionSubmitRequest{Network: "mainnet", NotarizedTransactionHex: "00"}

	client := newTestClient(t, doer,
		WithHTTPHeaders(map[string]string{"X-Api-Key": "default", "X-Team": "wallet"}),
		WithUserAgent("coreapi-test/1.0"),
	)

	t.Run("defaults", func(t *testing.T) {
		_, err := client.LTSTransactionSubmit(context.Background(), req)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(got.Get("X-Api-Key"), "default"))
		assert.Check(t, is.Equal(got.Get("X-Team"), "wallet"))
		assert.Check(t, is.Equal(got.Get("User-Agent"), "coreapi-test/1.0"))
		assert.Check(t, is.Equal(got.Get("Content-Type"), "application/json"))
	})

	t.Run("caller wins", func(t *testing.T) {
		_, err := client.LTSTransactionSubmit(context.Background(), req, WithRequestHeaders(http.Header{
			"x-api-key":  {"override"},
			"User-Agent": {"other/2.0"},
		}))
		assert.NilError(t, err)
		assert.Check(t, is.Equal(got.Get("X-Api-Key"), "override"))
		assert.Check(t, is.Equal(got.Get("X-Team"), "wallet"))
		assert.Check(t, is.Equal(got.Get("User-Agent"), "other/2.0"))
	})

	t.Run("without defaults", func(t *testing.T) {
		_, err := client.LTSTransactionSubmit(context.Background(), req, WithoutDefaultHeaders())
		assert.NilError(t, err)
		assert.Check(t, is.Equal(got.Get("X-Api-Key"), ""))
		assert.Check(t, is.Equal(got.Get("X-Team"), ""))
		assert.Check(t, got.Get("User-Agent") != "coreapi-test/1.0")
		assert.Check(t, is.Equal(got.Get("Content-Type"), "application/json"))
	})

	t.Run("defaults are not shared", func(t *testing.T) {
		headers := client.CustomHTTPHeaders()
		headers["X-Api-Key"] = "mutated"
		_, err := client.LTSTransactionSubmit(context.Background(), req)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(got.Get("X-Api-Key"), "default"))
	})
}

func TestPerCallDoer(t *testing.T) {
	client := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return nil, errors.New("client transport should not be used")
	})

	var calls int
	doer := newMockClient(func(req *http.Request) (*http.Response, error) {
		calls++
		return mockResponse(http.StatusOK, nil, `{"duplicate":true}`)(req)
	})
	resp, err := client.LTSTransactionSubmit(context.Background(), &lts.TransactionSubmitRequest{Network: "mainnet"}, WithDoer(doer))
	assert.NilError(t, err)
	assert.Check(t, resp.Duplicate)
	assert.Check(t, is.Equal(calls, 1))
}

func TestTransportErrorIsNotWrapped(t *testing.T) {
	errBoom := &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}
	var calls int
	client := newTestClient(t, func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errBoom
	})

	_, err := client.LTSTransactionSubmit(context.Background(), &lts.TransactionSubmitRequest{Network: "mainnet"})
	assert.Check(t, is.ErrorIs(err, errBoom))
	var respErr *ResponseError
	assert.Check(t, !errors.As(err, &respErr))
	assert.Check(t, IsErrConnectionFailed(err))
	assert.Check(t, is.Equal(calls, 1))
}

func TestTransportErrorFromCustomDoer(t *testing.T) {
	errBoom := errors.New("boom")
	client := newTestClient(t, nil)

	_, err := client.LTSTransactionSubmit(context.Background(), &lts.TransactionSubmitRequest{Network: "mainnet"},
		WithDoer(doerFunc(func(*http.Request) (*http.Response, error) { return nil, errBoom })))
	assert.Check(t, is.Equal(err, errBoom))
}

func TestCanceledContext(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.LTSTransactionSubmit(ctx, &lts.TransactionSubmitRequest{Network: "mainnet"})
	assert.Check(t, is.ErrorIs(err, context.Canceled))
	assert.Check(t, !IsErrConnectionFailed(err))
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
