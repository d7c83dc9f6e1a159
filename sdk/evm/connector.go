package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/IntersectLabs/supra-oracle-pull/sdk"
	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

var _ sdk.Connector = &Connector{}

// Connector submits EVM proofs to the oracle pull contract.
type Connector struct {
	mu sync.Mutex

	cfg          types.ChainConfig
	client       ContractDeployBackend
	ownsClient   bool
	key          *ecdsa.PrivateKey
	auth         *bind.TransactOpts
	contractAddr common.Address
	contract     *bind.BoundContract
	abi          abi.ABI
	method       string
	chainID      *big.Int
	chainName    string
	pollInterval time.Duration
}

type connectorOptions struct {
	client       ContractDeployBackend
	method       string
	abiJSON      string
	pollInterval time.Duration
}

type ConnectorOption func(*connectorOptions)

// WithBackend makes the connector use client instead of dialing the configured RPC URL.
func WithBackend(client ContractDeployBackend) ConnectorOption {
	return func(o *connectorOptions) {
		o.client = client
	}
}

// WithMethod submits proofs to method instead of verifyOracleProof. The method must take a
// single bytes argument.
func WithMethod(method string) ConnectorOption {
	return func(o *connectorOptions) {
		o.method = method
	}
}

// WithABI replaces the pull contract ABI, for consumer contracts that wrap the proof check.
func WithABI(abiJSON string) ConnectorOption {
	return func(o *connectorOptions) {
		o.abiJSON = abiJSON
	}
}

// WithPollInterval sets how often the receipt of a sent transaction is polled.
func WithPollInterval(d time.Duration) ConnectorOption {
	return func(o *connectorOptions) {
		o.pollInterval = d
	}
}

// NewConnector validates cfg, connects to the node and reads its chain ID. Configuration
// problems are reported as a ConfigError before any network call, an unreachable node as a
// ConnectionError.
func NewConnector(ctx context.Context, cfg types.ChainConfig, opts ...ConnectorOption) (*Connector, error) {
	o := connectorOptions{
		method:       DefaultMethod,
		abiJSON:      PullContractABI,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := sdk.ValidateChainConfig(cfg, sdk.ValidatorFunc(func() error {
		return validateContractAddress(cfg.ContractAddress)
	})); err != nil {
		return nil, err
	}

	parsedABI, err := abi.JSON(strings.NewReader(o.abiJSON))
	if err != nil {
		return nil, sdkerrors.NewConfigError("abi", err)
	}
	method, ok := parsedABI.Methods[o.method]
	if !ok {
		return nil, sdkerrors.NewConfigError("method", fmt.Errorf("method %q not found in ABI", o.method))
	}
	if len(method.Inputs) != 1 || method.Inputs[0].Type.T != abi.BytesTy {
		return nil, sdkerrors.NewConfigError("method", fmt.Errorf("method %q must take a single bytes argument", o.method))
	}

	key, err := parsePrivateKey(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	client := o.client
	ownsClient := false
	if client == nil {
		ethClient, dialErr := ethclient.DialContext(ctx, cfg.RPCURL)
		if dialErr != nil {
			zeroKey(key)
			return nil, sdkerrors.NewConnectionError(types.ChainTypeEVM, cfg.RPCURL, dialErr)
		}
		client = ethClient
		ownsClient = true
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		zeroKey(key)
		if c, ok := client.(closer); ok && ownsClient {
			c.Close()
		}

		return nil, sdkerrors.NewConnectionError(types.ChainTypeEVM, cfg.RPCURL, err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		zeroKey(key)
		return nil, sdkerrors.NewConfigError("secret_key", err)
	}

	chainName := chainID.String()
	if details, err := chain_selectors.GetChainDetailsByChainIDAndFamily(chainID.String(), chain_selectors.FamilyEVM); err == nil {
		chainName = details.ChainName
	}

	contractAddr := common.HexToAddress(cfg.ContractAddress)
	c := &Connector{
		cfg:          cfg,
		client:       client,
		ownsClient:   ownsClient,
		key:          key,
		auth:         auth,
		contractAddr: contractAddr,
		contract:     bind.NewBoundContract(contractAddr, parsedABI, client, client, client),
		abi:          parsedABI,
		method:       o.method,
		chainID:      chainID,
		chainName:    chainName,
		pollInterval: o.pollInterval,
	}

	sdk.LoggerFrom(ctx).Infow("EVM connector ready",
		"chain", chainName, "contract", contractAddr.Hex(), "from", auth.From.Hex(), "gasLimit", cfg.FeeLimit)

	return c, nil
}

func (c *Connector) ChainType() types.ChainType {
	return types.ChainTypeEVM
}

// ChainID returns the chain ID reported by the node.
func (c *Connector) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// From returns the address proofs are submitted from.
func (c *Connector) From() common.Address {
	return c.auth.From
}

// Invoke submits the proof to the pull contract in one transaction and waits for it to be
// mined. The gas estimate must fit within the configured fee limit, which is used as the
// transaction gas limit.
func (c *Connector) Invoke(ctx context.Context, resp types.PullResponse) (types.TransactionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proof, err := sdk.ProofFor[types.EVMProof](types.ChainTypeEVM, resp)
	if err != nil {
		return types.TransactionResult{}, err
	}

	if c.key == nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeEVM, "", "connector is closed", nil)
	}

	data, err := c.abi.Pack(c.method, []byte(proof.ProofBytes))
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("packing %s call: %w", c.method, err)
	}

	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From: c.auth.From,
		To:   &c.contractAddr,
		Data: data,
	})
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeEVM, "", "gas estimation failed", err)
	}
	if gas > c.cfg.FeeLimit {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeEVM, "", "",
			sdkerrors.NewFeeLimitExceededError(gas, c.cfg.FeeLimit))
	}

	opts := *c.auth
	opts.Context = ctx
	opts.GasLimit = gas

	tx, err := c.contract.RawTransact(&opts, data)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeEVM, "", "sending transaction", err)
	}

	lggr := sdk.LoggerFrom(ctx)
	lggr.Infow("Submitted proof transaction", "chain", c.chainName, "hash", tx.Hash().Hex(),
		"pairIndexes", proof.PairIndexes, "gas", gas)

	receipt, err := waitMined(ctx, c.client, tx.Hash(), c.pollInterval)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeEVM, tx.Hash().Hex(), "waiting for receipt", err)
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return types.TransactionResult{}, sdkerrors.NewSubmissionError(types.ChainTypeEVM, tx.Hash().Hex(), "transaction reverted", nil)
	}

	return types.TransactionResult{
		Hash:        tx.Hash().Hex(),
		ChainFamily: chain_selectors.FamilyEVM,
		RawData:     receipt,
	}, nil
}

// Close zeroes the signing key and closes the node connection if the connector dialed it.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	zeroKey(c.key)
	c.key = nil
	c.cfg.SecretKey.Zero()

	if cl, ok := c.client.(closer); ok && c.ownsClient {
		cl.Close()
	}

	return nil
}
