package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/containerd/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/radixdlt/babylon-node-sub000/client"
	"github.com/radixdlt/babylon-node-sub000/coreapi"
)

const (
	defaultBaseURL = "http://localhost:3333/core"

	envNetwork = "CORE_API_NETWORK"
)

type globalOptions struct {
	baseURL          string
	network          string
	skipNetworkCheck bool
	logLevel         string
	logFormat        string
	retries          uint64
	timeout          time.Duration
}

// coreAPICli holds the state shared by all commands.
type coreAPICli struct {
	opts   globalOptions
	out    io.Writer
	err    io.Writer
	client *http.Client
}

func newCLI(out, errOut io.Writer) *coreAPICli {
	return &coreAPICli{out: out, err: errOut}
}

func installGlobalFlags(flags *pflag.FlagSet, opts *globalOptions) {
	baseURL := os.Getenv(client.EnvOverrideURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	flags.StringVar(&opts.baseURL, "url", baseURL, "Base URL of the Core API (env "+client.EnvOverrideURL+")")
	flags.StringVar(&opts.network, "network", os.Getenv(envNetwork), "Logical name of the network, for example \"mainnet\" (env "+envNetwork+")")
	flags.BoolVar(&opts.skipNetworkCheck, "skip-network-check", false, "Do not check the network of the node on startup")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "info", `Set the logging level ("trace"|"debug"|"info"|"warn"|"error"|"fatal")`)
	flags.StringVar(&opts.logFormat, "log-format", string(log.TextFormat), `Set the logging format ("text"|"json")`)
	flags.Uint64Var(&opts.retries, "retries", 0, "Number of retries on connection errors")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout of each request")
}

func (c *coreAPICli) configureLogs() error {
	log.L.Logger.SetOutput(c.err)
	if err := log.SetFormat(log.OutputFormat(c.opts.logFormat)); err != nil {
		return errors.Wrap(err, "invalid log format")
	}
	if err := log.SetLevel(c.opts.logLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	return nil
}

func (c *coreAPICli) connect(ctx context.Context) (*coreapi.CoreAPI, error) {
	if c.opts.network == "" {
		return nil, errors.Errorf("no network configured: use --network or %s", envNetwork)
	}

	clientOpts := []client.Opt{
		client.WithTLSClientConfigFromEnv(),
		client.WithUserAgent("coreapi-cli"),
	}
	if c.opts.timeout > 0 {
		clientOpts = append(clientOpts, client.WithTimeout(c.opts.timeout))
	}
	if c.opts.retries > 0 {
		clientOpts = append(clientOpts, client.WithRetry(client.RetryPolicy{MaxRetries: c.opts.retries}))
	}

	api, err := coreapi.New(ctx, coreapi.Config{
		BaseURL:               c.opts.baseURL,
		LogicalNetworkName:    c.opts.network,
		HTTPClient:            c.client,
		ClientOptions:         clientOpts,
		SkipNetworkValidation: c.opts.skipNetworkCheck,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", c.opts.baseURL)
	}
	return api, nil
}

func (c *coreAPICli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCommand(cli *coreAPICli) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "coreapi [OPTIONS] COMMAND",
		Short:         "Query a node through the Core API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cli.configureLogs()
		},
	}
	cmd.SetOut(cli.out)
	cmd.SetErr(cli.err)
	installGlobalFlags(cmd.PersistentFlags(), &cli.opts)

	cmd.AddCommand(
		newStatusCommand(cli),
		newConstructionCommand(cli),
		newSubmitCommand(cli),
		newTransactionStatusCommand(cli),
		newBalanceCommand(cli),
		newOutcomesCommand(cli),
	)
	return cmd
}
