package coreapi

import (
	"context"
	"time"

	cerrdefs "github.com/containerd/errdefs"

	"github.com/radixdlt/babylon-node-sub000/api/types/common"
	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
	"github.com/radixdlt/babylon-node-sub000/client"
)

// DefaultAcceptableSyncDelay is how far the ledger clock may lag behind the
// local clock before [LTS.GetConstructionMetadata] fails.
const DefaultAcceptableSyncDelay = 120 * time.Second

// ConstructionMetadataOptions configures [LTS.GetConstructionMetadata].
type ConstructionMetadataOptions struct {
	// AcceptableSyncDelay overrides [DefaultAcceptableSyncDelay]. Zero is a
	// valid value: the ledger clock must then not be behind the local clock
	// at all.
	AcceptableSyncDelay *time.Duration
	// SkipSyncCheck disables the freshness check.
	SkipSyncCheck bool
}

// AcceptableSyncDelay returns a pointer to d, for use in
// [ConstructionMetadataOptions].
func AcceptableSyncDelay(d time.Duration) *time.Duration {
	return &d
}

// GetConstructionMetadata returns the current epoch and ledger clock, which
// are needed to build a transaction header.
//
// Unless opts.SkipSyncCheck is set, it returns a [*LedgerClockStaleError]
// if the ledger clock is further behind the local clock than acceptable, as
// a transaction built from stale metadata would likely be rejected.
func (l *LTS) GetConstructionMetadata(ctx context.Context, opts ConstructionMetadataOptions, reqOpts ...client.RequestOption) (lts.TransactionConstructionResponse, error) {
	delay := DefaultAcceptableSyncDelay
	if opts.AcceptableSyncDelay != nil {
		delay = *opts.AcceptableSyncDelay
	}
	if !opts.SkipSyncCheck && delay < 0 {
		return lts.TransactionConstructionResponse{}, cerrdefs.ErrInvalidArgument.WithMessage("acceptable sync delay must not be negative")
	}

	resp, err := l.client.LTSTransactionConstruction(ctx, &lts.TransactionConstructionRequest{Network: l.network}, reqOpts...)
	if err != nil {
		return lts.TransactionConstructionResponse{}, err
	}
	if opts.SkipSyncCheck {
		return resp, nil
	}
	if err := checkLedgerClock(resp.LedgerClock, delay, l.clock.Now()); err != nil {
		return lts.TransactionConstructionResponse{}, err
	}
	return resp, nil
}

// checkLedgerClock fails if ledgerClock plus delay is before now, at
// millisecond precision.
func checkLedgerClock(ledgerClock common.InstantMs, delay time.Duration, now time.Time) error {
	if ledgerClock.UnixTimestampMs+delay.Milliseconds() < now.UnixMilli() {
		return &LedgerClockStaleError{
			LedgerClock:     ledgerClock.Time(),
			Now:             now,
			AcceptableDelay: delay,
		}
	}
	return nil
}
