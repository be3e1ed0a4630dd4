package client

const (
	// EnvOverrideURL is the name of the environment variable that can be used
	// to set the base URL of the Core API, for example "http://localhost:3333/core".
	//
	// Only http:// and https:// URLs are supported.
	EnvOverrideURL = "CORE_API_URL"

	// EnvOverrideCertPath is the name of the environment variable that can be
	// used to specify the directory from which to load the TLS certificates
	// (ca.pem, cert.pem, key.pem) from. These certificates are used to configure
	// the [Client] for a TCP connection protected by TLS client authentication.
	//
	// TLS certificate verification is disabled unless [EnvTLSVerify] is set.
	EnvOverrideCertPath = "CORE_API_CERT_PATH"

	// EnvTLSVerify is the name of the environment variable that can be used to
	// enable or disable TLS certificate verification of the certificates loaded
	// from [EnvOverrideCertPath]. When set to a non-empty value, verification is
	// enabled. It has no effect if EnvOverrideCertPath is not set.
	//
	// WARNING: Disabling TLS certificate verification is intended for testing
	// purposes only and must not be used in production.
	EnvTLSVerify = "CORE_API_TLS_VERIFY"
)
