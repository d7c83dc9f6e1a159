package aptos

import (
	"context"
	"fmt"
	"sync"

	"github.com/aptos-labs/aptos-go-sdk"
	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/IntersectLabs/supra-oracle-pull/sdk"
	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

const (
	// DefaultModule and DefaultFunction name the entry function proofs are submitted to.
	DefaultModule   = "pull_example"
	DefaultFunction = "verify_oracle_proof"
)

var _ sdk.Connector = &Connector{}

// Connector submits Aptos proofs to an entry function of the pull contract.
type Connector struct {
	mu sync.Mutex

	cfg      types.ChainConfig
	client   Client
	account  *aptos.Account
	module   aptos.ModuleId
	function string
}

type connectorOptions struct {
	client   Client
	module   string
	function string
}

type ConnectorOption func(*connectorOptions)

// WithClient makes the connector use client instead of creating one for the RPC URL.
func WithClient(client Client) ConnectorOption {
	return func(o *connectorOptions) {
		o.client = client
	}
}

// WithEntryFunction submits proofs to `{contract}::{module}::{function}`. The function must take
// the signer and a single vector<u8>.
func WithEntryFunction(module, function string) ConnectorOption {
	return func(o *connectorOptions) {
		o.module = module
		o.function = function
	}
}

// NewConnector validates cfg and creates the node client. The node is first contacted when
// a proof is submitted.
func NewConnector(ctx context.Context, cfg types.ChainConfig, opts ...ConnectorOption) (*Connector, error) {
	o := connectorOptions{
		module:   DefaultModule,
		function: DefaultFunction,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var contract aptos.AccountAddress
	if err := sdk.ValidateChainConfig(cfg, sdk.ValidatorFunc(func() error {
		addr, err := hexToAddress(cfg.ContractAddress)
		if err != nil {
			return sdkerrors.NewConfigError("contract_address", fmt.Errorf("failed to parse contract address %q: %w", cfg.ContractAddress, err))
		}
		contract = addr

		return nil
	}), sdk.ValidatorFunc(func() error {
		if o.module == "" || o.function == "" {
			return sdkerrors.NewConfigError("entry_function", fmt.Errorf("module and function are required"))
		}

		return nil
	})); err != nil {
		return nil, err
	}

	account, err := accountFromSecret(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	client := o.client
	if client == nil {
		nodeClient, dialErr := DialNodeClient(cfg.RPCURL)
		if dialErr != nil {
			return nil, sdkerrors.NewConnectionError(types.ChainTypeAptos, cfg.RPCURL, dialErr)
		}
		client = nodeClient
	}

	c := &Connector{
		cfg:      cfg,
		client:   client,
		account:  account,
		module:   aptos.ModuleId{Address: contract, Name: o.module},
		function: o.function,
	}

	sender := account.AccountAddress()
	sdk.LoggerFrom(ctx).Infow("Aptos connector ready",
		"function", c.EntryFunction(), "sender", sender.String(), "maxGas", cfg.FeeLimit)

	return c, nil
}

func (c *Connector) ChainType() types.ChainType {
	return types.ChainTypeAptos
}

// EntryFunction returns the fully qualified function proofs are submitted to.
func (c *Connector) EntryFunction() string {
	return fmt.Sprintf("%s::%s::%s", c.module.Address.String(), c.module.Name, c.function)
}

// Invoke submits the proof in one transaction with the fee limit as max gas amount and waits
// for it to be committed.
func (c *Connector) Invoke(ctx context.Context, resp types.PullResponse) (types.TransactionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proof, err := sdk.ProofFor[types.AptosProof](types.ChainTypeAptos, resp)
	if err != nil {
		return types.TransactionResult{}, err
	}

	if c.account == nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeAptos, "", "connector is closed", nil)
	}

	arg, err := serializeProof(proof.ProofBytes)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("serializing proof: %w", err)
	}

	payload := aptos.TransactionPayload{
		Payload: &aptos.EntryFunction{
			Module:   c.module,
			Function: c.function,
			ArgTypes: []aptos.TypeTag{},
			Args:     [][]byte{arg},
		},
	}

	hash, err := c.client.BuildSignAndSubmit(c.account, payload, aptos.MaxGasAmount(c.cfg.FeeLimit))
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeAptos, "", "submitting transaction", err)
	}

	lggr := sdk.LoggerFrom(ctx)
	lggr.Infow("Submitted proof transaction", "function", c.EntryFunction(), "hash", hash, "pairIndexes", proof.PairIndexes)

	status, err := c.client.WaitForTransaction(hash)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeAptos, hash, "waiting for transaction", err)
	}
	if !status.Success {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeAptos, hash, status.VmStatus, nil)
	}

	return types.TransactionResult{
		Hash:        hash,
		ChainFamily: chain_selectors.FamilyAptos,
		RawData:     status,
	}, nil
}

// Close drops the signing account and zeroes the configured key.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.account = nil
	c.cfg.SecretKey.Zero()

	return nil
}
