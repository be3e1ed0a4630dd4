/*
Package client is a Go client for the Core API of a Radix Babylon node.

All operations of the Core API are POST requests carrying a JSON body, and
all of them answer with either a JSON body of the documented response type,
or a JSON error body (see [common.ErrorResponse]) alongside a non-2xx status.
Every operation is available in two shapes: a plain method returning the
decoded response, and a "Raw" method returning an [APIResponse] which keeps
the undecoded body and the response headers.

Any non-2xx response is returned as a [*ResponseError]. Failures to reach the
node are returned exactly as the underlying HTTP client produced them.

# Usage

	cli, err := client.NewClientWithOpts(client.WithBaseURL("http://localhost:3333/core"))
	if err != nil {
		panic(err)
	}

	resp, err := cli.LTSTransactionConstruction(context.Background(), &lts.TransactionConstructionRequest{
		Network: "mainnet",
	})
	if err != nil {
		var respErr *client.ResponseError
		if errors.As(err, &respErr) {
			fmt.Println(respErr.StatusCode, respErr.Message())
		}
		panic(err)
	}
	fmt.Println(resp.CurrentEpoch)

Most callers should use the convenience layer in package coreapi instead,
which validates the network name once and injects it into every request.
*/
package client

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrRedirect is the error returned by checkRedirect when the request is non-GET.
var ErrRedirect = errors.New("unexpected redirect in response")

// Doer sends a single HTTP request. *http.Client implements it, and so can
// any transport a caller wants to inject.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the API client that performs all operations
// against a Core API server.
//
// A Client is immutable once constructed and safe for concurrent use.
type Client struct {
	clientConfig

	// doer is the fully decorated transport every request goes through.
	doer Doer
}

// clientConfig holds the configuration that options mutate while a Client
// is being constructed.
type clientConfig struct {
	// scheme sets the scheme for the client
	scheme string
	// host is the host (and port) of the node, taken from the base URL
	host string
	// basePath is the path prefix of the Core API on the node, for example "/core"
	basePath string
	// client used to send and receive http requests.
	client *http.Client
	// custom HTTP headers configured by users.
	customHTTPHeaders map[string]string
	// userAgent is the User-Agent header to use for HTTP requests. It takes
	// precedence over User-Agent headers set in customHTTPHeaders, and other
	// header variables. When set to an empty string, the User-Agent header
	// is removed, and no header is sent.
	userAgent *string

	traceOpts []otelhttp.Option
	metrics   *transportMetrics
	retry     *RetryPolicy
}

// NewClientWithOpts initializes a new API client. A base URL must be
// configured, either with [WithBaseURL] or [FromEnv].
//
// Options are applied in order; later options override earlier ones.
func NewClientWithOpts(ops ...Opt) (*Client, error) {
	c := &Client{
		clientConfig: clientConfig{
			client: defaultHTTPClient(),
			traceOpts: []otelhttp.Option{
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return req.Method + " " + req.URL.Path
				}),
			},
		},
	}

	for _, op := range ops {
		if op == nil {
			continue
		}
		if err := op(&c.clientConfig); err != nil {
			return nil, err
		}
	}

	if c.host == "" {
		return nil, errors.New("no base URL configured for the Core API client")
	}

	c.doer = c.buildDoer()
	return c, nil
}

// buildDoer decorates the configured transport. The caller's *http.Client
// is copied, never modified.
func (cli *Client) buildDoer() Doer {
	hc := *cli.client
	transport := hc.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cli.metrics != nil {
		transport = cli.metrics.instrument(transport)
	}
	hc.Transport = otelhttp.NewTransport(transport, cli.traceOpts...)

	var doer Doer = &hc
	if cli.retry != nil {
		doer = NewRetryingDoer(doer, *cli.retry)
	}
	return doer
}

// BaseURL returns the URL requests are sent to, without a trailing slash.
func (cli *Client) BaseURL() string {
	u := url.URL{Scheme: cli.scheme, Host: cli.host, Path: cli.basePath}
	return strings.TrimSuffix(u.String(), "/")
}

// HTTPClient returns a copy of the HTTP client bound to the server.
func (cli *Client) HTTPClient() *http.Client {
	c := *cli.client
	return &c
}

// CustomHTTPHeaders returns the custom http headers stored by the client.
func (cli *Client) CustomHTTPHeaders() map[string]string {
	m := make(map[string]string, len(cli.customHTTPHeaders))
	for k, v := range cli.customHTTPHeaders {
		m[k] = v
	}
	return m
}

// Close releases idle connections of the underlying transport.
func (cli *Client) Close() error {
	if t, ok := cli.client.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
	return nil
}

// ParseBaseURL parses the base URL of a Core API server, for example
// "http://localhost:3333/core". Only the http and https schemes are
// supported.
func ParseBaseURL(baseURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("unable to parse Core API base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unable to parse Core API base URL %q: unsupported scheme %q", baseURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("unable to parse Core API base URL %q: missing host", baseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("unable to parse Core API base URL %q: query and fragment are not allowed", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}

func defaultHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &http.Client{
		Transport:     transport,
		CheckRedirect: CheckRedirect,
	}
}

// CheckRedirect specifies the policy for dealing with redirect responses. It
// can be set on [http.Client.CheckRedirect] to prevent HTTP redirects for
// non-GET requests. It returns an [ErrRedirect] for non-GET request, otherwise
// returns a [http.ErrUseLastResponse], which is special-cased by http.Client
// to use the last response.
//
// Go 1.8 changed behavior for HTTP redirects (specifically 301, 307, and 308)
// in the client. The client (and by extension API client) can be made to send
// a request like "POST /lts/transaction/submit" which results in a redirect
// to the same path without a body, which the node cannot process.
func CheckRedirect(_ *http.Request, via []*http.Request) error {
	if via[0].Method == http.MethodGet {
		return http.ErrUseLastResponse
	}
	return ErrRedirect
}
