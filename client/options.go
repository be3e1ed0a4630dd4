package client

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/docker/go-connections/tlsconfig"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// Opt is a configuration option to initialize a [Client].
type Opt func(*clientConfig) error

// FromEnv configures the client with values from environment variables. It
// is the equivalent of using the [WithTLSClientConfigFromEnv] and
// [WithBaseURLFromEnv] options.
//
// FromEnv uses the following environment variables:
//
//   - CORE_API_URL ([EnvOverrideURL]) to set the base URL of the Core API.
//   - CORE_API_CERT_PATH ([EnvOverrideCertPath]) to specify the directory from
//     which to load the TLS certificates ("ca.pem", "cert.pem", "key.pem').
//   - CORE_API_TLS_VERIFY ([EnvTLSVerify]) to enable or disable TLS verification
//     (off by default).
func FromEnv(c *clientConfig) error {
	ops := []Opt{
		WithTLSClientConfigFromEnv(),
		WithBaseURLFromEnv(),
	}
	for _, op := range ops {
		if err := op(c); err != nil {
			return err
		}
	}
	return nil
}

// WithBaseURL sets the base URL of the Core API, for example
// "http://localhost:3333/core". Operation paths are appended to it.
func WithBaseURL(baseURL string) Opt {
	return func(c *clientConfig) error {
		u, err := ParseBaseURL(baseURL)
		if err != nil {
			return err
		}
		c.scheme = u.Scheme
		c.host = u.Host
		c.basePath = u.Path
		return nil
	}
}

// WithBaseURLFromEnv overrides the base URL with the one specified in the
// CORE_API_URL ([EnvOverrideURL]) environment variable. If CORE_API_URL is
// not set, or set to an empty value, the base URL is not modified.
func WithBaseURLFromEnv() Opt {
	return func(c *clientConfig) error {
		if baseURL := os.Getenv(EnvOverrideURL); baseURL != "" {
			return WithBaseURL(baseURL)(c)
		}
		return nil
	}
}

// WithHTTPClient overrides the client's HTTP client with the specified one.
// The client is copied when the [Client] is constructed, and is not modified.
func WithHTTPClient(client *http.Client) Opt {
	return func(c *clientConfig) error {
		if client != nil {
			c.client = client
		}
		return nil
	}
}

// WithTimeout configures the time limit for requests made by the HTTP client.
func WithTimeout(timeout time.Duration) Opt {
	return func(c *clientConfig) error {
		hc := *c.client
		hc.Timeout = timeout
		c.client = &hc
		return nil
	}
}

// WithUserAgent configures the User-Agent header to use for HTTP requests.
// It overrides any User-Agent set in headers. When set to an empty string,
// the User-Agent header is removed, and no header is sent.
func WithUserAgent(ua string) Opt {
	return func(c *clientConfig) error {
		c.userAgent = &ua
		return nil
	}
}

// WithHTTPHeaders sets the default headers sent with every request. Headers
// passed to an operation with [WithRequestHeaders] take precedence.
func WithHTTPHeaders(headers map[string]string) Opt {
	return func(c *clientConfig) error {
		m := make(map[string]string, len(headers))
		for k, v := range headers {
			m[k] = v
		}
		c.customHTTPHeaders = m
		return nil
	}
}

// WithTLSClientConfig applies a TLS config to the client transport.
func WithTLSClientConfig(cacertPath, certPath, keyPath string) Opt {
	return func(c *clientConfig) error {
		transport, ok := c.client.Transport.(*http.Transport)
		if !ok {
			return fmt.Errorf("cannot apply tls config to transport: %T", c.client.Transport)
		}
		config, err := tlsconfig.Client(tlsconfig.Options{
			CAFile:             cacertPath,
			CertFile:           certPath,
			KeyFile:            keyPath,
			ExclusiveRootPools: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create tls config: %w", err)
		}
		transport = transport.Clone()
		transport.TLSClientConfig = config
		hc := *c.client
		hc.Transport = transport
		c.client = &hc
		return nil
	}
}

// WithTLSClientConfigFromEnv configures the client's TLS settings with the
// settings in the CORE_API_CERT_PATH ([EnvOverrideCertPath]) and
// CORE_API_TLS_VERIFY ([EnvTLSVerify]) environment variables. If
// CORE_API_CERT_PATH is not set or empty, TLS configuration is not modified.
func WithTLSClientConfigFromEnv() Opt {
	return func(c *clientConfig) error {
		certPath := os.Getenv(EnvOverrideCertPath)
		if certPath == "" {
			return nil
		}
		tlsc, err := tlsconfig.Client(tlsconfig.Options{
			CAFile:             filepath.Join(certPath, "ca.pem"),
			CertFile:           filepath.Join(certPath, "cert.pem"),
			KeyFile:            filepath.Join(certPath, "key.pem"),
			InsecureSkipVerify: os.Getenv(EnvTLSVerify) == "",
		})
		if err != nil {
			return err
		}

		c.client = &http.Client{
			Transport:     &http.Transport{TLSClientConfig: tlsc},
			CheckRedirect: CheckRedirect,
		}
		return nil
	}
}

// WithTraceProvider sets the trace provider for the client.
// If this is not set then the global trace provider is used.
func WithTraceProvider(provider trace.TracerProvider) Opt {
	return WithTraceOptions(otelhttp.WithTracerProvider(provider))
}

// WithTraceOptions sets tracing span options for the client.
func WithTraceOptions(opts ...otelhttp.Option) Opt {
	return func(c *clientConfig) error {
		c.traceOpts = append(c.traceOpts, opts...)
		return nil
	}
}

// WithMetrics records request counts, latencies and in-flight requests in
// collectors registered with reg. Clients sharing a registerer share the
// collectors.
func WithMetrics(reg prometheus.Registerer) Opt {
	return func(c *clientConfig) error {
		m, err := newTransportMetrics(reg)
		if err != nil {
			return err
		}
		c.metrics = m
		return nil
	}
}

// WithRetry retries requests that failed to reach the node, as described
// by policy. Responses are never retried, whatever their status code.
func WithRetry(policy RetryPolicy) Opt {
	return func(c *clientConfig) error {
		c.retry = &policy
		return nil
	}
}
