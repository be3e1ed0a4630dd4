package main

import (
	"time"

	units "github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
	"github.com/radixdlt/babylon-node-sub000/coreapi"
)

func newStatusCommand(cli *coreAPICli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the network configuration and ledger status of the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			api, err := cli.connect(ctx)
			if err != nil {
				return err
			}
			defer api.Client().Close()

			config, err := api.Status.GetNetworkConfiguration(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to get network configuration")
			}
			status, err := api.Status.GetNetworkStatus(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to get network status")
			}
			return cli.printJSON(map[string]any{
				"configuration": config,
				"status":        status,
			})
		},
	}
}

type constructionOptions struct {
	syncDelay   time.Duration
	noSyncCheck bool
}

func newConstructionCommand(cli *coreAPICli) *cobra.Command {
	var opts constructionOptions
	cmd := &cobra.Command{
		Use:   "construction [OPTIONS]",
		Short: "Show the metadata needed to construct a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			api, err := cli.connect(ctx)
			if err != nil {
				return err
			}
			defer api.Client().Close()

			metaOpts := coreapi.ConstructionMetadataOptions{SkipSyncCheck: opts.noSyncCheck}
			if cmd.Flags().Changed("sync-delay") {
				metaOpts.AcceptableSyncDelay = coreapi.AcceptableSyncDelay(opts.syncDelay)
			}
			resp, err := api.LTS.GetConstructionMetadata(ctx, metaOpts)
			if err != nil {
				var stale *coreapi.LedgerClockStaleError
				if errors.As(err, &stale) {
					return errors.Wrapf(err, "node is not synced: ledger clock is %s behind", units.HumanDuration(stale.Lag()))
				}
				return errors.Wrap(err, "failed to get construction metadata")
			}
			return cli.printJSON(resp)
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&opts.syncDelay, "sync-delay", coreapi.DefaultAcceptableSyncDelay, "How far the ledger clock may lag behind the local clock")
	flags.BoolVar(&opts.noSyncCheck, "no-sync-check", false, "Do not check the ledger clock")
	cmd.MarkFlagsMutuallyExclusive("sync-delay", "no-sync-check")
	return cmd
}

// submitOutput is the printed form of a [coreapi.SubmitResult].
type submitOutput struct {
	Kind      coreapi.SubmitResultKind `json:"kind"`
	Duplicate *bool                    `json:"duplicate,omitempty"`
	Message   string                   `json:"message,omitempty"`
	Details   any                      `json:"details,omitempty"`
}

func newSubmitOutput(result coreapi.SubmitResult) submitOutput {
	out := submitOutput{Kind: result.Kind()}
	switch r := result.(type) {
	case *coreapi.SubmitSuccess:
		out.Duplicate = &r.Response.Duplicate
	case *coreapi.SubmitError:
		out.Message = r.Message
	case *coreapi.SubmitRejected:
		out.Message = r.Err.Message()
		out.Details = r.Details
	case *coreapi.SubmitPriorityThresholdNotMet:
		out.Message = r.Err.Message()
		out.Details = r.Details
	}
	return out
}

func newSubmitCommand(cli *coreAPICli) *cobra.Command {
	var forceRecalculate bool
	cmd := &cobra.Command{
		Use:   "submit [OPTIONS] NOTARIZED_TRANSACTION_HEX",
		Short: "Submit a notarized transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := cli.connect(ctx)
			if err != nil {
				return err
			}
			defer api.Client().Close()

			req := coreapi.SubmitTransactionRequest{NotarizedTransactionHex: args[0]}
			if cmd.Flags().Changed("force-recalculate") {
				req.ForceRecalculate = &forceRecalculate
			}
			result, err := api.LTS.SubmitTransaction(ctx, req)
			if err != nil {
				return errors.Wrap(err, "failed to submit transaction")
			}
			return cli.printJSON(newSubmitOutput(result))
		},
	}
	cmd.Flags().BoolVar(&forceRecalculate, "force-recalculate", false, "Re-execute the transaction even if a rejection is cached")
	return cmd
}

func newTransactionStatusCommand(cli *coreAPICli) *cobra.Command {
	return &cobra.Command{
		Use:   "tx-status INTENT_HASH",
		Short: "Show the status of a transaction intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := cli.connect(ctx)
			if err != nil {
				return err
			}
			defer api.Client().Close()

			resp, err := api.LTS.GetTransactionStatus(ctx, args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to get status of %s", args[0])
			}
			return cli.printJSON(resp)
		},
	}
}

func newBalanceCommand(cli *coreAPICli) *cobra.Command {
	return &cobra.Command{
		Use:   "balance ACCOUNT [RESOURCE]",
		Short: "Show the fungible balances of an account",
		Long:  "Show the balance of one fungible resource in an account, or of all of them if no resource is given.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := cli.connect(ctx)
			if err != nil {
				return err
			}
			defer api.Client().Close()

			if len(args) == 2 {
				resp, err := api.LTS.GetAccountFungibleResourceBalance(ctx, args[0], args[1])
				if err != nil {
					return errors.Wrapf(err, "failed to get balance of %s", args[0])
				}
				return cli.printJSON(resp)
			}
			resp, err := api.LTS.GetAccountAllFungibleResourceBalances(ctx, args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to get balances of %s", args[0])
			}
			return cli.printJSON(resp)
		},
	}
}

type outcomesOptions struct {
	from    int64
	limit   int
	account string
}

func newOutcomesCommand(cli *coreAPICli) *cobra.Command {
	var opts outcomesOptions
	cmd := &cobra.Command{
		Use:   "outcomes [OPTIONS]",
		Short: "List the outcomes of committed transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.limit <= 0 {
				return errors.Errorf("invalid limit %d: must be positive", opts.limit)
			}
			ctx := cmd.Context()
			api, err := cli.connect(ctx)
			if err != nil {
				return err
			}
			defer api.Client().Close()

			var resp lts.StreamTransactionOutcomesResponse
			if opts.account != "" {
				resp, err = api.LTS.GetAccountTransactionOutcomes(ctx, opts.account, opts.from, opts.limit)
			} else {
				resp, err = api.LTS.GetTransactionOutcomes(ctx, opts.from, opts.limit)
			}
			if err != nil {
				return errors.Wrap(err, "failed to get transaction outcomes")
			}
			return cli.printJSON(resp)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&opts.from, "from", 1, "State version to start from")
	flags.IntVar(&opts.limit, "limit", 100, "Maximum number of outcomes")
	flags.StringVar(&opts.account, "account", "", "Only list transactions that touched this account")
	return cmd
}
