// Package coreapi is a convenience layer over package client for the most
// common uses of the Core API of a Radix Babylon node.
//
// A [CoreAPI] is bound to one logical network. [New] checks that the node is
// configured for that network, and every request made through the [LTS] and
// [Status] sub-APIs carries it, so callers never supply it themselves.
//
// Where the node answers with a documented business-level failure, such as a
// rejected transaction submission, the failure is returned as a value (see
// [SubmitResult]). Anything else is returned as an error.
package coreapi

import (
	"context"
	"net/http"

	"code.cloudfoundry.org/clock"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/containerd/log"

	"github.com/radixdlt/babylon-node-sub000/client"
)

// Config configures [New].
type Config struct {
	// BaseURL is the base URL of the Core API, for example
	// "http://localhost:3333/core". If empty, it must be set through
	// ClientOptions, for example with [client.FromEnv].
	BaseURL string
	// LogicalNetworkName is the name of the network the node must be
	// configured for, for example "mainnet" or "stokenet". It is required.
	LogicalNetworkName string
	// HTTPClient sends the requests. If nil, a dedicated client is created.
	HTTPClient *http.Client
	// ClientOptions are applied to the underlying [client.Client] after
	// BaseURL and HTTPClient.
	ClientOptions []client.Opt
	// SkipNetworkValidation disables the check that the node is configured
	// for LogicalNetworkName, and the request New makes for it.
	SkipNetworkValidation bool
	// Clock is used to check the freshness of the ledger clock. It defaults
	// to the system clock.
	Clock clock.Clock
}

// CoreAPI gives access to the Core API of one node, on one network.
type CoreAPI struct {
	// LTS holds the long-term-support operations.
	LTS *LTS
	// Status holds the node status operations.
	Status *Status

	client      *client.Client
	networkName string
}

// New creates a [CoreAPI]. Unless cfg.SkipNetworkValidation is set, it
// fetches the network configuration of the node and returns a
// [*NetworkMismatchError] if the node is configured for another network.
func New(ctx context.Context, cfg Config) (*CoreAPI, error) {
	if cfg.LogicalNetworkName == "" {
		return nil, cerrdefs.ErrInvalidArgument.WithMessage("logical network name must not be empty")
	}

	var ops []client.Opt
	if cfg.BaseURL != "" {
		ops = append(ops, client.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		ops = append(ops, client.WithHTTPClient(cfg.HTTPClient))
	}
	ops = append(ops, cfg.ClientOptions...)
	cli, err := client.NewClientWithOpts(ops...)
	if err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewClock()
	}

	api := &CoreAPI{
		LTS:         newLTS(cli, cfg.LogicalNetworkName, clk),
		Status:      newStatus(cli, cfg.LogicalNetworkName),
		client:      cli,
		networkName: cfg.LogicalNetworkName,
	}

	if cfg.SkipNetworkValidation {
		return api, nil
	}
	if err := api.validateNetwork(ctx); err != nil {
		return nil, err
	}
	return api, nil
}

func (api *CoreAPI) validateNetwork(ctx context.Context) error {
	cfg, err := api.Status.GetNetworkConfiguration(ctx)
	if err != nil {
		return err
	}
	if cfg.Network != api.networkName {
		return &NetworkMismatchError{Expected: api.networkName, Actual: cfg.Network}
	}
	log.G(ctx).WithFields(log.Fields{
		"network":    cfg.Network,
		"network_id": cfg.NetworkID,
		"version":    cfg.Version.CoreVersion,
	}).Debug("node network validated")
	return nil
}

// NetworkName returns the logical network name the CoreAPI is bound to.
func (api *CoreAPI) NetworkName() string {
	return api.networkName
}

// Client returns the underlying low-level client, for operations this
// package does not cover.
func (api *CoreAPI) Client() *client.Client {
	return api.client
}
