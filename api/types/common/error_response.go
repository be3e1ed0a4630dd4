package common

import (
	"encoding/json"
	"fmt"
)

// ErrorType is the discriminant of an [ErrorResponse], carried in the
// "error_type" field of every error body returned by the Core API.
type ErrorType string

const (
	ErrorTypeBasic                ErrorType = "Basic"
	ErrorTypeLtsTransactionSubmit ErrorType = "LtsTransactionSubmit"
	ErrorTypeTransactionSubmit    ErrorType = "TransactionSubmit"
	ErrorTypeStreamTransactions   ErrorType = "StreamTransactions"
)

// ErrorResponse is the body of a non-2xx response of the Core API.
//
// It is a closed union: the only implementations are [*BasicErrorResponse],
// [*LtsTransactionSubmitErrorResponse], [*TransactionSubmitErrorResponse]
// and [*StreamTransactionsErrorResponse]. Use a type switch to tell them
// apart; [DecodeErrorResponse] returns exactly one of them.
type ErrorResponse interface {
	ErrorType() ErrorType
	ErrorCode() int
	ErrorMessage() string
	ErrorTraceID() string

	isErrorResponse()
}

// ErrorResponseBase holds the members shared by every [ErrorResponse] variant.
type ErrorResponseBase struct {
	// Code is the HTTP status code the node responded with.
	Code int `json:"code"`
	// Message is a human-readable description of the error.
	Message string `json:"message"`
	// TraceID can be used to correlate the error with the node's logs.
	TraceID string `json:"trace_id,omitempty"`
}

func (e ErrorResponseBase) ErrorCode() int       { return e.Code }
func (e ErrorResponseBase) ErrorMessage() string { return e.Message }
func (e ErrorResponseBase) ErrorTraceID() string { return e.TraceID }

// BasicErrorResponse is returned by endpoints that have no error details of
// their own.
type BasicErrorResponse struct {
	ErrorResponseBase
}

func (*BasicErrorResponse) ErrorType() ErrorType { return ErrorTypeBasic }
func (*BasicErrorResponse) isErrorResponse()     {}

func (e BasicErrorResponse) MarshalJSON() ([]byte, error) {
	type plain BasicErrorResponse
	return withTag("error_type", string(ErrorTypeBasic), plain(e))
}

// LtsTransactionSubmitErrorResponse is returned by POST "/lts/transaction/submit".
type LtsTransactionSubmitErrorResponse struct {
	ErrorResponseBase
	// Details is nil if the node did not provide any.
	Details LtsTransactionSubmitErrorDetails `json:"details,omitempty"`
}

func (*LtsTransactionSubmitErrorResponse) ErrorType() ErrorType {
	return ErrorTypeLtsTransactionSubmit
}
func (*LtsTransactionSubmitErrorResponse) isErrorResponse() {}

func (e LtsTransactionSubmitErrorResponse) MarshalJSON() ([]byte, error) {
	type plain LtsTransactionSubmitErrorResponse
	return withTag("error_type", string(ErrorTypeLtsTransactionSubmit), plain(e))
}

func (e *LtsTransactionSubmitErrorResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		ErrorResponseBase
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = LtsTransactionSubmitErrorResponse{ErrorResponseBase: raw.ErrorResponseBase}
	if isAbsent(raw.Details) {
		return nil
	}
	details, err := DecodeLtsTransactionSubmitErrorDetails(raw.Details)
	if err != nil {
		return err
	}
	e.Details = details
	return nil
}

// TransactionSubmitErrorResponse is returned by POST "/transaction/submit".
type TransactionSubmitErrorResponse struct {
	ErrorResponseBase
	// Details is nil if the node did not provide any.
	Details TransactionSubmitErrorDetails `json:"details,omitempty"`
}

func (*TransactionSubmitErrorResponse) ErrorType() ErrorType { return ErrorTypeTransactionSubmit }
func (*TransactionSubmitErrorResponse) isErrorResponse()     {}

func (e TransactionSubmitErrorResponse) MarshalJSON() ([]byte, error) {
	type plain TransactionSubmitErrorResponse
	return withTag("error_type", string(ErrorTypeTransactionSubmit), plain(e))
}

func (e *TransactionSubmitErrorResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		ErrorResponseBase
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = TransactionSubmitErrorResponse{ErrorResponseBase: raw.ErrorResponseBase}
	if isAbsent(raw.Details) {
		return nil
	}
	details, err := DecodeTransactionSubmitErrorDetails(raw.Details)
	if err != nil {
		return err
	}
	e.Details = details
	return nil
}

// StreamTransactionsErrorResponse is returned by the transaction stream
// endpoints.
type StreamTransactionsErrorResponse struct {
	ErrorResponseBase
	Details StreamTransactionsErrorDetails `json:"details,omitempty"`
}

func (*StreamTransactionsErrorResponse) ErrorType() ErrorType { return ErrorTypeStreamTransactions }
func (*StreamTransactionsErrorResponse) isErrorResponse()     {}

func (e StreamTransactionsErrorResponse) MarshalJSON() ([]byte, error) {
	type plain StreamTransactionsErrorResponse
	return withTag("error_type", string(ErrorTypeStreamTransactions), plain(e))
}

func (e *StreamTransactionsErrorResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		ErrorResponseBase
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = StreamTransactionsErrorResponse{ErrorResponseBase: raw.ErrorResponseBase}
	if isAbsent(raw.Details) {
		return nil
	}
	details, err := DecodeStreamTransactionsErrorDetails(raw.Details)
	if err != nil {
		return err
	}
	e.Details = details
	return nil
}

// DecodeErrorResponse decodes an error body, selecting the variant from its
// "error_type" field. The node accepts both the short and the long name of
// each variant ("Basic" and "BasicErrorResponse"), and so does this decoder.
// Any other value, or a missing tag, is an error.
func DecodeErrorResponse(data []byte) (ErrorResponse, error) {
	tag, err := discriminant(data, "error_type")
	if err != nil {
		return nil, err
	}

	var v ErrorResponse
	switch ErrorType(tag) {
	case ErrorTypeBasic, "BasicErrorResponse":
		v = &BasicErrorResponse{}
	case ErrorTypeLtsTransactionSubmit, "LtsTransactionSubmitErrorResponse":
		v = &LtsTransactionSubmitErrorResponse{}
	case ErrorTypeTransactionSubmit, "TransactionSubmitErrorResponse":
		v = &TransactionSubmitErrorResponse{}
	case ErrorTypeStreamTransactions, "StreamTransactionsErrorResponse":
		v = &StreamTransactionsErrorResponse{}
	default:
		return nil, UnknownDiscriminantError{Field: "error_type", Value: tag}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("invalid %s error response: %w", tag, err)
	}
	return v, nil
}
