package coreapi

import (
	"fmt"
	"time"

	cerrdefs "github.com/containerd/errdefs"
)

// NetworkMismatchError is returned by [New] when the node is configured for
// a different network than the one requested.
type NetworkMismatchError struct {
	Expected string
	Actual   string
}

func (e *NetworkMismatchError) Error() string {
	return fmt.Sprintf("node is configured for network %q, expected %q", e.Actual, e.Expected)
}

// Unwrap returns [cerrdefs.ErrInvalidArgument].
func (e *NetworkMismatchError) Unwrap() error {
	return cerrdefs.ErrInvalidArgument
}

// LedgerClockStaleError is returned by [LTS.GetConstructionMetadata] when the
// ledger clock reported by the node is further behind the local clock than
// acceptable. It usually means the node is still syncing.
type LedgerClockStaleError struct {
	// LedgerClock is the ledger time reported by the node.
	LedgerClock time.Time
	// Now is the local time the ledger clock was compared with.
	Now time.Time
	// AcceptableDelay is the largest accepted lag.
	AcceptableDelay time.Duration
}

// Lag returns how far the ledger clock is behind the local clock.
func (e *LedgerClockStaleError) Lag() time.Duration {
	return e.Now.Sub(e.LedgerClock)
}

func (e *LedgerClockStaleError) Error() string {
	return fmt.Sprintf("ledger clock %s is %s behind the local clock, more than the acceptable %s; the node may not be synced up",
		e.LedgerClock.UTC().Format(time.RFC3339Nano), e.Lag(), e.AcceptableDelay)
}

// Unwrap returns [cerrdefs.ErrFailedPrecondition].
func (e *LedgerClockStaleError) Unwrap() error {
	return cerrdefs.ErrFailedPrecondition
}
