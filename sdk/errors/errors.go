package sdkerrors

import (
	"fmt"

	"github.com/IntersectLabs/supra-oracle-pull/types"
)

// ConstructionError is returned when a pull client cannot be created, typically because the
// base URL is malformed.
type ConstructionError struct {
	BaseURL string
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct pull client for %q: %v", e.BaseURL, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func NewConstructionError(baseURL string, err error) *ConstructionError {
	return &ConstructionError{BaseURL: baseURL, Err: err}
}

// TransportError is returned when the oracle or a chain node could not be reached, the
// connection dropped, or the request timed out.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func NewTransportError(url string, err error) *TransportError {
	return &TransportError{URL: url, Err: err}
}

// RemoteError is returned when the oracle answers with a non-success HTTP status.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("oracle returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("oracle returned status %d: %s", e.StatusCode, e.Body)
}

func NewRemoteError(statusCode int, body string) *RemoteError {
	return &RemoteError{StatusCode: statusCode, Body: body}
}

// DecodeError is returned when a response body does not match the expected shape.
type DecodeError struct {
	ChainType types.ChainType
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s pull response: %v", e.ChainType, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func NewDecodeError(chainType types.ChainType, err error) *DecodeError {
	return &DecodeError{ChainType: chainType, Err: err}
}

// ConfigError is returned when a connector or request configuration is malformed. It is
// always raised before any network call.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}

	return fmt.Sprintf("invalid configuration for %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// ConnectionError is returned when a chain RPC endpoint cannot be reached while building a
// connector.
type ConnectionError struct {
	ChainType types.ChainType
	RPCURL    string
	Err       error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s node at %s: %v", e.ChainType, e.RPCURL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func NewConnectionError(chainType types.ChainType, rpcURL string, err error) *ConnectionError {
	return &ConnectionError{ChainType: chainType, RPCURL: rpcURL, Err: err}
}

// SubmissionError is returned when a proof transaction exceeds the fee ceiling or is
// rejected or reverted by the chain. TxHash is set when the transaction reached the chain.
type SubmissionError struct {
	ChainType types.ChainType
	TxHash    string
	Reason    string
	Err       error
}

func (e *SubmissionError) Error() string {
	msg := fmt.Sprintf("%s submission failed", e.ChainType)
	if e.TxHash != "" {
		msg += " for tx " + e.TxHash
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func NewSubmissionError(chainType types.ChainType, txHash, reason string, err error) *SubmissionError {
	return &SubmissionError{ChainType: chainType, TxHash: txHash, Reason: reason, Err: err}
}

// FeeLimitExceededError is the cause carried by a SubmissionError when the estimated cost of
// a transaction is above the configured ceiling.
type FeeLimitExceededError struct {
	Estimated uint64
	Limit     uint64
}

func (e *FeeLimitExceededError) Error() string {
	return fmt.Sprintf("estimated fee %d exceeds limit %d", e.Estimated, e.Limit)
}

func NewFeeLimitExceededError(estimated, limit uint64) *FeeLimitExceededError {
	return &FeeLimitExceededError{Estimated: estimated, Limit: limit}
}

// ChainMismatchError is returned when a proof for one chain family is handed to a connector
// for another.
type ChainMismatchError struct {
	Want types.ChainType
	Got  types.ChainType
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("chain type mismatch: connector handles %q, got %q", e.Want, e.Got)
}

func NewChainMismatchError(want, got types.ChainType) *ChainMismatchError {
	return &ChainMismatchError{Want: want, Got: got}
}
