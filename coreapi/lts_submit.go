package coreapi

import (
	"context"
	"errors"

	"github.com/containerd/log"

	"github.com/radixdlt/babylon-node-sub000/api/types/common"
	"github.com/radixdlt/babylon-node-sub000/api/types/lts"
	"github.com/radixdlt/babylon-node-sub000/client"
)

// SubmitResultKind names the variants of [SubmitResult].
type SubmitResultKind string

const (
	SubmitResultSuccess                 SubmitResultKind = "Success"
	SubmitResultError                   SubmitResultKind = "Error"
	SubmitResultRejected                SubmitResultKind = "Rejected"
	SubmitResultPriorityThresholdNotMet SubmitResultKind = "PriorityThresholdNotMet"
)

// SubmitResult is the outcome of [LTS.SubmitTransaction].
//
// It is a closed union: the only implementations are [*SubmitSuccess],
// [*SubmitError], [*SubmitRejected] and [*SubmitPriorityThresholdNotMet].
type SubmitResult interface {
	Kind() SubmitResultKind

	isSubmitResult()
}

// SubmitSuccess means the node accepted the transaction into its mempool.
type SubmitSuccess struct {
	Response lts.TransactionSubmitResponse
}

// SubmitError means the node refused the submission without saying why in
// a structured form.
type SubmitError struct {
	Message string
	Err     *client.ResponseError
}

// SubmitRejected means the node executed the transaction and rejected it.
type SubmitRejected struct {
	Details *common.LtsTransactionSubmitRejectedErrorDetails
	Err     *client.ResponseError
}

// SubmitPriorityThresholdNotMet means the mempool is full, and the tip of
// the transaction is too low to displace another one.
type SubmitPriorityThresholdNotMet struct {
	Details *common.LtsTransactionSubmitPriorityThresholdNotMetErrorDetails
	Err     *client.ResponseError
}

func (*SubmitSuccess) Kind() SubmitResultKind                 { return SubmitResultSuccess }
func (*SubmitError) Kind() SubmitResultKind                   { return SubmitResultError }
func (*SubmitRejected) Kind() SubmitResultKind                { return SubmitResultRejected }
func (*SubmitPriorityThresholdNotMet) Kind() SubmitResultKind { return SubmitResultPriorityThresholdNotMet }

func (*SubmitSuccess) isSubmitResult()                 {}
func (*SubmitError) isSubmitResult()                   {}
func (*SubmitRejected) isSubmitResult()                {}
func (*SubmitPriorityThresholdNotMet) isSubmitResult() {}

// SubmitTransactionRequest is the input of [LTS.SubmitTransaction].
type SubmitTransactionRequest struct {
	// NotarizedTransactionHex is the hex-encoded notarized transaction payload.
	NotarizedTransactionHex string
	// ForceRecalculate makes the node re-execute the payload even if it has
	// a cached rejection for it.
	ForceRecalculate *bool
}

// SubmitTransaction submits a notarized transaction.
//
// A submission the node refuses with a transaction submit error body is
// returned as a [*SubmitError], [*SubmitRejected] or
// [*SubmitPriorityThresholdNotMet], with a nil error. Any other failure,
// including an error body of another kind or with unknown details, is
// returned unchanged as the error.
func (l *LTS) SubmitTransaction(ctx context.Context, req SubmitTransactionRequest, opts ...client.RequestOption) (SubmitResult, error) {
	resp, err := l.client.LTSTransactionSubmit(ctx, &lts.TransactionSubmitRequest{
		Network:                 l.network,
		NotarizedTransactionHex: req.NotarizedTransactionHex,
		ForceRecalculate:        req.ForceRecalculate,
	}, opts...)
	if err == nil {
		return &SubmitSuccess{Response: resp}, nil
	}

	result, ok := classifySubmitError(err)
	if !ok {
		return nil, err
	}
	log.G(ctx).WithFields(log.Fields{
		"result": result.Kind(),
		"error":  err,
	}).Debug("transaction submission refused by node")
	return result, nil
}

// classifySubmitError maps the error of a transaction submission to a
// result. It returns false for errors it does not recognize.
func classifySubmitError(err error) (SubmitResult, bool) {
	var respErr *client.ResponseError
	if !errors.As(err, &respErr) {
		return nil, false
	}
	envelope, ok := respErr.Envelope.(*common.LtsTransactionSubmitErrorResponse)
	if !ok {
		return nil, false
	}

	switch details := envelope.Details.(type) {
	case nil:
		return &SubmitError{Message: envelope.Message, Err: respErr}, true
	case *common.LtsTransactionSubmitRejectedErrorDetails:
		return &SubmitRejected{Details: details, Err: respErr}, true
	case *common.LtsTransactionSubmitPriorityThresholdNotMetErrorDetails:
		return &SubmitPriorityThresholdNotMet{Details: details, Err: respErr}, true
	default:
		return nil, false
	}
}
