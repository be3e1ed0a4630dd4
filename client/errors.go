package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/containerd/log"

	"github.com/radixdlt/babylon-node-sub000/api/types/common"
)

// maxErrorBodySize is the largest error body read from a response.
const maxErrorBodySize = 1 * 1024 * 1024 // 1 MiB

// ResponseError is the error returned for every non-2xx response of the
// Core API, whatever its body.
//
// ResponseError unwraps to the [github.com/containerd/errdefs] class that
// matches its status code, so callers can use, for example,
// [cerrdefs.IsNotFound] or [cerrdefs.IsUnavailable] on it.
type ResponseError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Status is the HTTP status line, for example "503 Service Unavailable".
	Status string
	// Envelope is the decoded error body. It is nil if the body was empty
	// or was not a valid error body, in which case Body holds the raw text.
	Envelope common.ErrorResponse
	// Body is the response body as received, up to 1 MiB.
	Body []byte
	// Truncated is set if the body was larger than 1 MiB.
	Truncated bool
	// RequestURL is the URL of the request that failed, if known.
	RequestURL string
}

// Message returns the error message of the node if the body was a valid
// error body, the trimmed raw body otherwise, or a description of the
// status if the body was empty.
func (e *ResponseError) Message() string {
	switch {
	case e.Envelope != nil && strings.TrimSpace(e.Envelope.ErrorMessage()) != "":
		return strings.TrimSpace(e.Envelope.ErrorMessage())
	case e.Envelope != nil:
		return fmt.Sprintf("API returned a %d (%s) but provided no error-message", e.StatusCode, http.StatusText(e.StatusCode))
	case e.Truncated:
		return fmt.Sprintf("request returned %s with a message (> %d bytes)", e.status(), maxErrorBodySize)
	case len(strings.TrimSpace(string(e.Body))) > 0:
		return strings.TrimSpace(string(e.Body))
	case e.RequestURL != "":
		return fmt.Sprintf("request returned %s for API route %s", e.status(), e.RequestURL)
	default:
		return fmt.Sprintf("request returned %s", e.status())
	}
}

func (e *ResponseError) Error() string {
	return "Error response from node: " + e.Message()
}

// Unwrap returns the errdefs class of the status code.
func (e *ResponseError) Unwrap() error {
	return errdefsFromStatusCode(e.StatusCode)
}

func (e *ResponseError) status() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func errdefsFromStatusCode(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return cerrdefs.ErrInvalidArgument
	case http.StatusUnauthorized:
		return cerrdefs.ErrUnauthenticated
	case http.StatusForbidden:
		return cerrdefs.ErrPermissionDenied
	case http.StatusNotFound:
		return cerrdefs.ErrNotFound
	case http.StatusConflict:
		return cerrdefs.ErrConflict
	case http.StatusTooManyRequests:
		return cerrdefs.ErrResourceExhausted
	case http.StatusNotImplemented:
		return cerrdefs.ErrNotImplemented
	case http.StatusServiceUnavailable:
		return cerrdefs.ErrUnavailable
	}
	if statusCode >= 500 {
		return cerrdefs.ErrInternal
	}
	return cerrdefs.ErrUnknown
}

// checkResponseErr returns a [*ResponseError] for any non-2xx response, and
// nil otherwise. A failure to read the error body is returned as is.
func checkResponseErr(ctx context.Context, serverResp *http.Response) error {
	if serverResp == nil {
		return nil
	}
	if serverResp.StatusCode >= http.StatusOK && serverResp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: serverResp.StatusCode,
		Status:     serverResp.Status,
	}
	if serverResp.Request != nil && serverResp.Request.URL != nil {
		respErr.RequestURL = serverResp.Request.URL.String()
	}
	if serverResp.Body != nil {
		bodyR := &io.LimitedReader{
			R: serverResp.Body,
			N: int64(maxErrorBodySize) + 1,
		}
		body, err := io.ReadAll(bodyR)
		if err != nil {
			return err
		}
		if len(body) > maxErrorBodySize {
			respErr.Body = body[:maxErrorBodySize]
			respErr.Truncated = true
			return respErr
		}
		respErr.Body = body
	}
	if len(respErr.Body) == 0 {
		return respErr
	}

	envelope, err := common.DecodeErrorResponse(respErr.Body)
	if err != nil {
		// Plain text, HTML from a proxy, or a JSON body of an unknown shape.
		log.G(ctx).WithFields(log.Fields{
			"status":       serverResp.StatusCode,
			"content-type": serverResp.Header.Get("Content-Type"),
			"body":         string(respErr.Body),
			"error":        err,
		}).Debug("unable to decode error response from node")
		return respErr
	}
	respErr.Envelope = envelope
	return respErr
}

// IsErrConnectionFailed returns true if the error is caused by connection
// failed, as opposed to an error response from the node or a canceled
// context. A redirect refused by [CheckRedirect] is not a connection
// failure: the node did answer.
func IsErrConnectionFailed(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrRedirect) {
		return false
	}
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return false
	}

	// *url.Error implements net.Error itself, so look at what it wraps.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	// Covers *net.OpError, *net.DNSError and timeouts.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// invalidRequest is returned by operations that are called without a
// request body.
func invalidRequest(operation string) error {
	return cerrdefs.ErrInvalidArgument.WithMessage(operation + ": request must not be nil")
}
