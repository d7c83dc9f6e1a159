package radix

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	gatewayStatusPath     = "/status/gateway-status"
	transactionSubmitPath = "/transaction/submit"
	transactionStatusPath = "/transaction/status"

	defaultGatewayTimeout = 30 * time.Second
)

// Intent statuses reported by the Gateway for a submitted transaction.
const (
	StatusUnknown                     = "Unknown"
	StatusPending                     = "Pending"
	StatusCommitPendingOutcomeUnknown = "CommitPendingOutcomeUnknown"
	StatusCommittedSuccess            = "CommittedSuccess"
	StatusCommittedFailure            = "CommittedFailure"
	StatusRejected                    = "Rejected"
	StatusPermanentlyRejected         = "PermanentlyRejected"
	StatusLikelyButNotCertainRejected = "LikelyButNotCertainRejection"
)

// LedgerState is the ledger position the Gateway answered at.
type LedgerState struct {
	Network      string `json:"network"`
	StateVersion uint64 `json:"state_version"`
	Epoch        uint64 `json:"epoch"`
	Round        uint64 `json:"round"`
}

type GatewayStatus struct {
	LedgerState LedgerState `json:"ledger_state"`
}

type TransactionStatus struct {
	LedgerState  LedgerState `json:"ledger_state"`
	Status       string      `json:"status"`
	IntentStatus string      `json:"intent_status"`
	ErrorMessage string      `json:"error_message"`
}

// Outcome returns the intent status, falling back to the legacy status field.
func (s TransactionStatus) Outcome() string {
	if s.IntentStatus != "" {
		return s.IntentStatus
	}
	if s.Status != "" {
		return s.Status
	}

	return StatusUnknown
}

type submitRequest struct {
	NotarizedTransactionHex string `json:"notarized_transaction_hex"`
}

type submitResponse struct {
	Duplicate bool `json:"duplicate"`
}

type statusRequest struct {
	IntentHash string `json:"intent_hash"`
}

// GatewayError is the error body returned by the Gateway API.
type GatewayError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Code       int    `json:"code"`
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Message)
}

// Gateway is a client for the parts of the Radix Gateway API the connector needs.
type Gateway struct {
	baseURL string
	http    *resty.Client
}

// NewGateway creates a Gateway client for baseURL, e.g. https://stokenet.radixdlt.com.
// A nil hc uses a default http.Client.
func NewGateway(baseURL string, hc *http.Client) *Gateway {
	var rc *resty.Client
	if hc != nil {
		rc = resty.NewWithClient(hc)
	} else {
		rc = resty.New().SetTimeout(defaultGatewayTimeout)
	}

	base := strings.TrimRight(baseURL, "/")
	rc.SetBaseURL(base).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Gateway{baseURL: base, http: rc}
}

func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// Status returns the current ledger state, including the network name and epoch.
func (g *Gateway) Status(ctx context.Context) (GatewayStatus, error) {
	var out GatewayStatus
	err := g.post(ctx, gatewayStatusPath, struct{}{}, &out)

	return out, err
}

// Submit sends a notarized transaction. It reports whether the Gateway had already seen it.
func (g *Gateway) Submit(ctx context.Context, notarizedHex string) (bool, error) {
	var out submitResponse
	err := g.post(ctx, transactionSubmitPath, submitRequest{NotarizedTransactionHex: notarizedHex}, &out)

	return out.Duplicate, err
}

// TransactionStatus returns the status of the transaction with the given intent hash.
func (g *Gateway) TransactionStatus(ctx context.Context, intentHash string) (TransactionStatus, error) {
	var out TransactionStatus
	err := g.post(ctx, transactionStatusPath, statusRequest{IntentHash: intentHash}, &out)

	return out, err
}

func (g *Gateway) post(ctx context.Context, path string, body, result any) error {
	gwErr := &GatewayError{}
	resp, err := g.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(gwErr).
		ForceContentType("application/json").
		Post(path)
	if err != nil {
		if resp != nil && resp.StatusCode() >= http.StatusBadRequest {
			// Error bodies that are not JSON, e.g. from a proxy.
			return &GatewayError{StatusCode: resp.StatusCode()}
		}

		return fmt.Errorf("POST %s%s: %w", g.baseURL, path, err)
	}
	if !resp.IsSuccess() {
		gwErr.StatusCode = resp.StatusCode()
		return gwErr
	}

	return nil
}
