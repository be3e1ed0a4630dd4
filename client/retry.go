package client

import (
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/containerd/log"
)

// RetryPolicy configures [NewRetryingDoer].
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries uint64
	// InitialInterval is the wait before the first retry. It defaults to
	// backoff's default of 500ms.
	InitialInterval time.Duration
	// MaxInterval caps the wait between two retries. It defaults to
	// backoff's default of 60s.
	MaxInterval time.Duration
}

func (p RetryPolicy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	// Bounded by MaxRetries only.
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, p.MaxRetries)
}

// NewRetryingDoer returns a [Doer] that retries requests through next when
// they fail with a connection error (see [IsErrConnectionFailed]).
//
// A response is never retried, whatever its status code. A request is not
// retried once its context is done, nor when its body cannot be replayed.
// The error of the last attempt is returned unchanged.
func NewRetryingDoer(next Doer, policy RetryPolicy) Doer {
	return &retryingDoer{next: next, policy: policy}
}

type retryingDoer struct {
	next   Doer
	policy RetryPolicy
}

func (d *retryingDoer) Do(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return d.next.Do(req)
	}

	ctx := req.Context()
	var (
		resp    *http.Response
		attempt int
	)
	op := func() error {
		r := req
		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return backoff.Permanent(err)
			}
			r = req.Clone(ctx)
			r.Body = body
		}
		attempt++

		res, err := d.next.Do(r)
		if err != nil {
			if ctx.Err() != nil || !IsErrConnectionFailed(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		resp = res
		return nil
	}

	notify := func(err error, wait time.Duration) {
		log.G(ctx).WithFields(log.Fields{
			"attempt": attempt,
			"url":     req.URL.String(),
			"wait":    wait,
			"error":   err,
		}).Debug("request to node failed, retrying")
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(d.policy.backOff(), ctx), notify); err != nil {
		return nil, err
	}
	return resp, nil
}
