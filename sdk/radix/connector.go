package radix

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/IntersectLabs/supra-oracle-pull/sdk"
	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

const (
	DefaultMethod       = "verify_proof"
	DefaultPollInterval = 2 * time.Second

	// DefaultEpochWindow is how many epochs a transaction intent stays valid.
	DefaultEpochWindow = 10
)

var _ sdk.Connector = &Connector{}

// Connector submits Radix proofs by calling a method of the pull component. RPCURL is the
// Gateway API base URL.
type Connector struct {
	mu sync.Mutex

	cfg          types.ChainConfig
	gateway      *Gateway
	notarizer    Notarizer
	network      string
	account      string
	method       string
	epochWindow  uint64
	pollInterval time.Duration
	closed       bool
}

type connectorOptions struct {
	notarizer    Notarizer
	httpClient   *http.Client
	method       string
	epochWindow  uint64
	pollInterval time.Duration
}

type ConnectorOption func(*connectorOptions)

// WithNotarizer sets the notarizer used to compile and sign transactions. It is required.
func WithNotarizer(n Notarizer) ConnectorOption {
	return func(o *connectorOptions) {
		o.notarizer = n
	}
}

// WithHTTPClient makes the Gateway client use hc.
func WithHTTPClient(hc *http.Client) ConnectorOption {
	return func(o *connectorOptions) {
		o.httpClient = hc
	}
}

// WithMethod calls method on the component instead of verify_proof.
func WithMethod(method string) ConnectorOption {
	return func(o *connectorOptions) {
		o.method = method
	}
}

// WithEpochWindow sets for how many epochs after the current one the intent is valid.
func WithEpochWindow(epochs uint64) ConnectorOption {
	return func(o *connectorOptions) {
		o.epochWindow = epochs
	}
}

// WithPollInterval sets how often the status of a submitted transaction is polled.
func WithPollInterval(d time.Duration) ConnectorOption {
	return func(o *connectorOptions) {
		o.pollInterval = d
	}
}

// NewConnector validates cfg, asks the Gateway for its network and derives the fee paying
// account through the notarizer.
func NewConnector(ctx context.Context, cfg types.ChainConfig, opts ...ConnectorOption) (*Connector, error) {
	o := connectorOptions{
		method:       DefaultMethod,
		epochWindow:  DefaultEpochWindow,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := sdk.ValidateChainConfig(cfg, sdk.ValidatorFunc(func() error {
		if err := validateAddress(cfg.ContractAddress, componentPrefix); err != nil {
			return sdkerrors.NewConfigError("contract_address", err)
		}

		return nil
	}), sdk.ValidatorFunc(func() error {
		if o.notarizer == nil {
			return sdkerrors.NewConfigError("notarizer", errors.New("a notarizer is required to sign Radix transactions"))
		}
		if o.method == "" {
			return sdkerrors.NewConfigError("method", errors.New("method is required"))
		}
		if o.epochWindow == 0 {
			return sdkerrors.NewConfigError("epoch_window", errors.New("must be at least one epoch"))
		}

		return nil
	})); err != nil {
		return nil, err
	}

	gateway := NewGateway(cfg.RPCURL, o.httpClient)
	status, err := gateway.Status(ctx)
	if err != nil {
		return nil, sdkerrors.NewConnectionError(types.ChainTypeRadix, cfg.RPCURL, err)
	}
	network := status.LedgerState.Network

	var account string
	err = cfg.SecretKey.Use(func(key []byte) error {
		var accErr error
		account, accErr = o.notarizer.AccountAddress(network, key)

		return accErr
	})
	if err != nil {
		return nil, sdkerrors.NewConfigError("secret_key", errors.New("notarizer could not derive an account from the key"))
	}
	if err := validateAddress(account, accountPrefix); err != nil {
		return nil, sdkerrors.NewConfigError("secret_key", fmt.Errorf("notarizer returned an invalid account: %w", err))
	}

	c := &Connector{
		cfg:          cfg,
		gateway:      gateway,
		notarizer:    o.notarizer,
		network:      network,
		account:      account,
		method:       o.method,
		epochWindow:  o.epochWindow,
		pollInterval: o.pollInterval,
	}

	sdk.LoggerFrom(ctx).Infow("Radix connector ready",
		"network", network, "component", cfg.ContractAddress, "account", account, "feeLimit", cfg.FeeLimit)

	return c, nil
}

func (c *Connector) ChainType() types.ChainType {
	return types.ChainTypeRadix
}

// Network returns the network name reported by the Gateway.
func (c *Connector) Network() string {
	return c.network
}

// Account returns the account that pays the transaction fees.
func (c *Connector) Account() string {
	return c.account
}

// Invoke notarizes a transaction calling the component method with the proof, submits it
// and polls the Gateway until it is committed or rejected.
func (c *Connector) Invoke(ctx context.Context, resp types.PullResponse) (types.TransactionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proof, err := sdk.ProofFor[types.RadixProof](types.ChainTypeRadix, resp)
	if err != nil {
		return types.TransactionResult{}, err
	}

	if c.closed {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeRadix, "", "connector is closed", nil)
	}

	status, err := c.gateway.Status(ctx)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeRadix, "", "reading current epoch", err)
	}
	epoch := status.LedgerState.Epoch

	req := NotarizeRequest{
		Network:    c.network,
		Manifest:   buildManifest(c.account, c.cfg.ContractAddress, c.method, proof.ProofBytes, c.cfg.FeeLimit),
		StartEpoch: epoch,
		EndEpoch:   epoch + c.epochWindow,
		Nonce:      rand.Uint32(),
	}

	var tx NotarizedTransaction
	err = c.cfg.SecretKey.Use(func(key []byte) error {
		var notarizeErr error
		tx, notarizeErr = c.notarizer.Notarize(ctx, req, key)

		return notarizeErr
	})
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeRadix, "", "notarizing transaction", err)
	}

	lggr := sdk.LoggerFrom(ctx)
	duplicate, err := c.gateway.Submit(ctx, tx.NotarizedHex)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeRadix, tx.IntentHash, "submitting transaction", err)
	}
	lggr.Infow("Submitted proof transaction",
		"component", c.cfg.ContractAddress, "intentHash", tx.IntentHash, "duplicate", duplicate, "pairIndexes", proof.PairIndexes)

	final, err := c.waitCommitted(ctx, tx.IntentHash)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return types.TransactionResult{
		Hash:        tx.IntentHash,
		ChainFamily: string(types.ChainTypeRadix),
		RawData:     final,
	}, nil
}

// waitCommitted polls the intent status until it reaches a final outcome or ctx is done.
func (c *Connector) waitCommitted(ctx context.Context, intentHash string) (TransactionStatus, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	lggr := sdk.LoggerFrom(ctx)
	for {
		status, err := c.gateway.TransactionStatus(ctx, intentHash)
		if err != nil {
			lggr.Debugw("Transaction status retrieval failed", "intentHash", intentHash, "err", err)
		} else {
			switch outcome := status.Outcome(); outcome {
			case StatusCommittedSuccess:
				return status, nil
			case StatusCommittedFailure, StatusRejected, StatusPermanentlyRejected:
				reason := outcome
				if status.ErrorMessage != "" {
					reason += ": " + status.ErrorMessage
				}

				return status, sdkerrors.NewSubmissionError(types.ChainTypeRadix, intentHash, reason, nil)
			default:
				lggr.Debugw("Transaction not yet committed", "intentHash", intentHash, "status", outcome)
			}
		}

		select {
		case <-ctx.Done():
			return TransactionStatus{}, sdkerrors.NewSubmissionError(types.ChainTypeRadix, intentHash, "waiting for commit", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Close zeroes the configured key. The connector cannot submit afterwards.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.cfg.SecretKey.Zero()

	return nil
}
