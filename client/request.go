package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"reflect"
)

// RequestOption customizes a single operation call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers          http.Header
	noDefaultHeaders bool
	doer             Doer
}

// WithRequestHeaders adds headers to a single request. They are applied after
// the client's default headers, and win on collision.
func WithRequestHeaders(headers http.Header) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		for k, v := range headers {
			o.headers[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
		}
	}
}

// WithoutDefaultHeaders omits the headers configured with [WithHTTPHeaders]
// and [WithUserAgent] for a single request.
func WithoutDefaultHeaders() RequestOption {
	return func(o *requestOptions) {
		o.noDefaultHeaders = true
	}
}

// WithDoer sends a single request through d instead of the client's
// transport. None of the client's instrumentation or retry policy applies.
func WithDoer(d Doer) RequestOption {
	return func(o *requestOptions) {
		o.doer = d
	}
}

func newRequestOptions(opts []RequestOption) requestOptions {
	var o requestOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// post sends an http POST request to the API, and returns an error for
// any non-2xx response.
func (cli *Client) post(ctx context.Context, path string, body any, opts []RequestOption) (*http.Response, error) {
	jsonBody, headers, err := prepareJSONRequest(body, nil)
	if err != nil {
		return nil, err
	}
	return cli.sendRequest(ctx, http.MethodPost, path, nil, jsonBody, headers, newRequestOptions(opts))
}

// prepareJSONRequest encodes the given body to JSON and returns it as an [io.Reader], and sets the Content-Type
// header. If body is nil, or a nil-interface, a "nil" body is returned without
// error.
func prepareJSONRequest(body any, headers http.Header) (io.Reader, http.Header, error) {
	if body == nil {
		return nil, headers, nil
	}
	// encoding/json encodes a nil pointer as the JSON document `null`,
	// irrespective of whether the type implements json.Marshaler or encoding.TextMarshaler.
	// That is almost certainly not what the caller intended as the request body.
	if reflect.TypeOf(body).Kind() == reflect.Ptr && reflect.ValueOf(body).IsNil() {
		return nil, headers, nil
	}

	jsonBody, err := jsonEncode(body)
	if err != nil {
		return nil, headers, err
	}
	hdr := http.Header{}
	if headers != nil {
		hdr = headers.Clone()
	}

	hdr.Set("Content-Type", "application/json")
	return jsonBody, hdr, nil
}

func (cli *Client) buildRequest(ctx context.Context, method, path string, body io.Reader, headers http.Header, opts requestOptions) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	req = cli.addHeaders(req, headers, opts)
	req.URL.Scheme = cli.scheme
	req.URL.Host = cli.host
	return req, nil
}

func (cli *Client) sendRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, headers http.Header, opts requestOptions) (*http.Response, error) {
	req, err := cli.buildRequest(ctx, method, cli.getAPIPath(path, query), body, headers, opts)
	if err != nil {
		return nil, err
	}

	resp, err := cli.doRequest(req, opts)
	if err != nil {
		// Failed to connect or context error.
		return resp, err
	}

	// Successfully made a request; return the response and handle any
	// API HTTP response errors.
	return resp, checkResponseErr(ctx, resp)
}

// doRequest sends an HTTP request and returns an HTTP response. It makes
// exactly one call to the transport and does not look at the status code.
//
// Errors are returned as produced by the transport, so callers can compare
// them with [context.Canceled] or inspect them with [IsErrConnectionFailed].
// On error, any Response can be ignored.
func (cli *Client) doRequest(req *http.Request, opts requestOptions) (*http.Response, error) {
	doer := cli.doer
	if opts.doer != nil {
		doer = opts.doer
	}
	return doer.Do(req)
}

func (cli *Client) getAPIPath(p string, query url.Values) string {
	apiPath := path.Join("/", cli.basePath, p)
	return (&url.URL{Path: apiPath, RawQuery: query.Encode()}).String()
}

func (cli *Client) addHeaders(req *http.Request, headers http.Header, opts requestOptions) *http.Request {
	if !opts.noDefaultHeaders {
		for k, v := range cli.customHTTPHeaders {
			req.Header.Set(k, v)
		}
		if cli.userAgent != nil {
			if *cli.userAgent == "" {
				req.Header.Del("User-Agent")
			} else {
				req.Header.Set("User-Agent", *cli.userAgent)
			}
		}
	}

	for k, v := range headers {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}

	// Caller-supplied headers go last so they win on collision.
	for k, v := range opts.headers {
		req.Header[k] = v
	}
	return req
}

func jsonEncode(data any) (io.Reader, error) {
	var params bytes.Buffer
	if data != nil {
		if err := json.NewEncoder(&params).Encode(data); err != nil {
			return nil, err
		}
	}
	return &params, nil
}

func ensureReaderClosed(response *http.Response) {
	if response != nil && response.Body != nil {
		// Drain up to 512 bytes and close the body to let the Transport reuse the connection
		// see https://github.com/google/go-github/pull/317/files#r57536827
		_, _ = io.CopyN(io.Discard, response.Body, 512)
		_ = response.Body.Close()
	}
}

// postJSON sends body to path and returns the successful response, to be
// decoded as T.
func postJSON[T any](ctx context.Context, cli *Client, path string, body any, opts []RequestOption) (*APIResponse[T], error) {
	resp, err := cli.post(ctx, path, body, opts)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}
	return NewAPIResponse(resp, JSONDecoder[T]())
}
