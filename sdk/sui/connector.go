package sui

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/block-vision/sui-go-sdk/models"
	"github.com/block-vision/sui-go-sdk/signer"
	"github.com/block-vision/sui-go-sdk/sui"
	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/IntersectLabs/supra-oracle-pull/sdk"
	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

const (
	DefaultModule   = "pull_example"
	DefaultFunction = "get_pair_price"

	executionSuccess = "success"
)

// Client is the part of sui.ISuiAPI the connector uses.
type Client interface {
	MoveCall(ctx context.Context, req models.MoveCallRequest) (models.TxnMetaData, error)
	SignAndExecuteTransactionBlock(ctx context.Context, req models.SignAndExecuteTransactionBlockRequest) (models.SuiTransactionBlockResponse, error)
}

var (
	_ Client        = sui.ISuiAPI(nil)
	_ sdk.Connector = &Connector{}
)

// Connector submits Sui proofs through a move call on the pull contract package.
type Connector struct {
	mu sync.Mutex

	cfg      types.ChainConfig
	client   Client
	signer   *signer.Signer
	sender   string
	pkg      string
	module   string
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

// WithMoveFunction calls `{package}::{module}::{function}` instead of the default. The
// function takes the three proof objects, the proof bytes and the clock.
func WithMoveFunction(module, function string) ConnectorOption {
	return func(o *connectorOptions) {
		o.module = module
		o.function = function
	}
}

// NewConnector validates cfg and builds the signer. No request is made until the first
// Invoke.
func NewConnector(ctx context.Context, cfg types.ChainConfig, opts ...ConnectorOption) (*Connector, error) {
	o := connectorOptions{
		module:   DefaultModule,
		function: DefaultFunction,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var pkg string
	if err := sdk.ValidateChainConfig(cfg, sdk.ValidatorFunc(func() error {
		addr, err := AddressFromHex(cfg.ContractAddress)
		if err != nil {
			return sdkerrors.NewConfigError("contract_address", fmt.Errorf("failed to parse package id %q: %w", cfg.ContractAddress, err))
		}
		pkg = addr.Hex()

		return nil
	}), sdk.ValidatorFunc(func() error {
		if o.module == "" || o.function == "" {
			return sdkerrors.NewConfigError("move_function", fmt.Errorf("module and function are required"))
		}

		return nil
	})); err != nil {
		return nil, err
	}

	s, err := signerFromSecret(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	client := o.client
	if client == nil {
		client = sui.NewSuiClient(cfg.RPCURL)
	}

	c := &Connector{
		cfg:      cfg,
		client:   client,
		signer:   s,
		sender:   s.Address,
		pkg:      pkg,
		module:   o.module,
		function: o.function,
	}

	sdk.LoggerFrom(ctx).Infow("Sui connector ready",
		"function", c.MoveFunction(), "sender", s.Address, "gasBudget", cfg.FeeLimit)

	return c, nil
}

func (c *Connector) ChainType() types.ChainType {
	return types.ChainTypeSui
}

// MoveFunction returns the fully qualified function proofs are submitted to.
func (c *Connector) MoveFunction() string {
	return fmt.Sprintf("%s::%s::%s", c.pkg, c.module, c.function)
}

// Sender returns the address transactions are signed by.
func (c *Connector) Sender() string {
	return c.sender
}

// Invoke builds the move call with the fee limit as gas budget, then signs and executes it
// waiting for local execution.
func (c *Connector) Invoke(ctx context.Context, resp types.PullResponse) (types.TransactionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proof, err := sdk.ProofFor[types.SuiProof](types.ChainTypeSui, resp)
	if err != nil {
		return types.TransactionResult{}, err
	}

	if c.signer == nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeSui, "", "connector is closed", nil)
	}

	args := make([]any, 0, 5)
	for _, obj := range []struct{ field, id string }{
		{"dkg_object", proof.DkgObject},
		{"oracle_holder_object", proof.OracleHolderObject},
		{"merkle_root_object", proof.MerkleRootObject},
	} {
		arg, argErr := objectArgument(obj.field, obj.id)
		if argErr != nil {
			return types.TransactionResult{}, sdkerrors.NewDecodeError(types.ChainTypeSui, argErr)
		}
		args = append(args, arg)
	}
	args = append(args, bytesArgument(proof.ProofBytes), ClockObjectID)

	txn, err := c.client.MoveCall(ctx, models.MoveCallRequest{
		Signer:          c.sender,
		PackageObjectId: c.pkg,
		Module:          c.module,
		Function:        c.function,
		TypeArguments:   []any{},
		Arguments:       args,
		GasBudget:       strconv.FormatUint(c.cfg.FeeLimit, 10),
	})
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeSui, "", "building move call", err)
	}

	result, err := c.client.SignAndExecuteTransactionBlock(ctx, models.SignAndExecuteTransactionBlockRequest{
		TxnMetaData: txn,
		PriKey:      c.signer.PriKey,
		Options: models.SuiTransactionBlockOptions{
			ShowEffects: true,
		},
		RequestType: "WaitForLocalExecution",
	})
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeSui, "", "executing transaction", err)
	}

	sdk.LoggerFrom(ctx).Infow("Executed proof transaction",
		"function", c.MoveFunction(), "digest", result.Digest, "pairIndexes", proof.PairIndexes)

	if status := result.Effects.Status; status.Status != executionSuccess {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeSui, result.Digest, status.Error, nil)
	}

	return types.TransactionResult{
		Hash:        result.Digest,
		ChainFamily: chain_selectors.FamilySui,
		RawData:     result,
	}, nil
}

// Close zeroes the signing key and the configured seed.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.signer != nil {
		clear(c.signer.PriKey)
		c.signer = nil
	}
	c.cfg.SecretKey.Zero()

	return nil
}
