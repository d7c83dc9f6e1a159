package evm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IntersectLabs/supra-oracle-pull/internal/testutils/evmsim"
	"github.com/IntersectLabs/supra-oracle-pull/sdk/evm"
	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

var contractAddress = common.HexToAddress("0x00000000000000000000000000000000000000aa")

func proofResponse(proof []byte) types.PullResponse {
	return types.PullResponse{
		ChainType: types.ChainTypeEVM,
		EVM:       &types.EVMProof{PairIndexes: []uint32{0, 21}, ProofBytes: proof},
	}
}

func newSimConnector(t *testing.T, sim evmsim.SimulatedChain, to common.Address, feeLimit uint64) *evm.Connector {
	t.Helper()

	cfg := types.NewChainConfig(sim.Signers[0].HexKey(), "http://localhost:8545", to.Hex(), feeLimit)
	connector, err := evm.NewConnector(context.Background(), cfg,
		evm.WithBackend(sim.Backend.Client()),
		evm.WithPollInterval(10*time.Millisecond),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = connector.Close() })

	return connector
}

func TestNewConnector(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	connector := newSimConnector(t, sim, contractAddress, evmsim.DefaultGasLimit)

	assert.Equal(t, types.ChainTypeEVM, connector.ChainType())
	assert.Equal(t, int64(evm.SimulatedEVMChainID), connector.ChainID().Int64())
	assert.Equal(t, sim.Signers[0].Address(t), connector.From())
}

func TestNewConnector_ConfigErrors(t *testing.T) {
	t.Parallel()

	// Every case must fail before the node is contacted
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "unexpected call", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	validKey := "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

	tests := []struct {
		name      string
		cfg       types.ChainConfig
		opts      []evm.ConnectorOption
		wantField string
	}{
		{
			name: "empty contract address",
			cfg:  types.NewChainConfig(validKey, srv.URL, "", 100000),
		},
		{
			name:      "malformed contract address",
			cfg:       types.NewChainConfig(validKey, srv.URL, "0xnotanaddress", 100000),
			wantField: "contract_address",
		},
		{
			name: "empty rpc url",
			cfg:  types.NewChainConfig(validKey, "", contractAddress.Hex(), 100000),
		},
		{
			name: "zero fee limit",
			cfg:  types.NewChainConfig(validKey, srv.URL, contractAddress.Hex(), 0),
		},
		{
			name:      "malformed secret key",
			cfg:       types.NewChainConfig("0xnothex", srv.URL, contractAddress.Hex(), 100000),
			wantField: "secret_key",
		},
		{
			name:      "unknown method",
			cfg:       types.NewChainConfig(validKey, srv.URL, contractAddress.Hex(), 100000),
			opts:      []evm.ConnectorOption{evm.WithMethod("getPairPrice")},
			wantField: "method",
		},
		{
			name:      "invalid abi",
			cfg:       types.NewChainConfig(validKey, srv.URL, contractAddress.Hex(), 100000),
			opts:      []evm.ConnectorOption{evm.WithABI("{")},
			wantField: "abi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evm.NewConnector(context.Background(), tt.cfg, tt.opts...)

			var cfgErr *sdkerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.NotContains(t, err.Error(), validKey[2:])
		})
	}

	assert.Zero(t, calls)
}

func TestNewConnector_ConnectionError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	sim := evmsim.NewSimulatedChain(t, 1)
	cfg := types.NewChainConfig(sim.Signers[0].HexKey(), url, contractAddress.Hex(), 100000)

	_, err := evm.NewConnector(context.Background(), cfg)

	var connErr *sdkerrors.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, types.ChainTypeEVM, connErr.ChainType)
	assert.Equal(t, url, connErr.RPCURL)
}

func TestConnector_Invoke(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	sim.AutoCommit(t, 10*time.Millisecond)
	connector := newSimConnector(t, sim, contractAddress, evmsim.DefaultGasLimit)

	got, err := connector.Invoke(context.Background(), proofResponse([]byte{0xab, 0xc1, 0x23}))
	require.NoError(t, err)

	assert.Equal(t, "evm", got.ChainFamily)
	receipt, ok := got.RawData.(*gethtypes.Receipt)
	require.True(t, ok)
	assert.Equal(t, gethtypes.ReceiptStatusSuccessful, receipt.Status)
	assert.Equal(t, got.Hash, receipt.TxHash.Hex())

	tx, _, err := sim.Backend.Client().TransactionByHash(context.Background(), receipt.TxHash)
	require.NoError(t, err)
	assert.Equal(t, contractAddress, *tx.To())
	// selector of verifyOracleProof(bytes) followed by the ABI encoded proof
	assert.Len(t, tx.Data(), 4+32+32+32)
	assert.LessOrEqual(t, tx.Gas(), evmsim.DefaultGasLimit)
}

func TestConnector_Invoke_TwiceSendsTwoTransactions(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	sim.AutoCommit(t, 10*time.Millisecond)
	connector := newSimConnector(t, sim, contractAddress, evmsim.DefaultGasLimit)

	resp := proofResponse([]byte{1, 2, 3})

	first, err := connector.Invoke(context.Background(), resp)
	require.NoError(t, err)
	second, err := connector.Invoke(context.Background(), resp)
	require.NoError(t, err)

	assert.NotEqual(t, first.Hash, second.Hash)
	assert.Equal(t, uint64(2), sim.NonceAt(t, sim.Signers[0].Address(t)))
}

func TestConnector_Invoke_FeeLimitExceeded(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	// A plain transfer costs 21000, the calldata pushes the estimate above the ceiling
	connector := newSimConnector(t, sim, contractAddress, 21000)

	_, err := connector.Invoke(context.Background(), proofResponse([]byte{1, 2, 3}))

	var submissionErr *sdkerrors.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Empty(t, submissionErr.TxHash)

	var feeErr *sdkerrors.FeeLimitExceededError
	require.ErrorAs(t, err, &feeErr)
	assert.Equal(t, uint64(21000), feeErr.Limit)
	assert.Greater(t, feeErr.Estimated, feeErr.Limit)

	sim.Commit()
	assert.Zero(t, sim.NonceAt(t, sim.Signers[0].Address(t)))
}

func TestConnector_Invoke_Reverted(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	reverting := sim.DeployRevertingContract(t, sim.Signers[0])
	connector := newSimConnector(t, sim, reverting, evmsim.DefaultGasLimit)

	_, err := connector.Invoke(context.Background(), proofResponse([]byte{1}))

	var submissionErr *sdkerrors.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, "gas estimation failed", submissionErr.Reason)
}

func TestConnector_Invoke_WrongChain(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	connector := newSimConnector(t, sim, contractAddress, evmsim.DefaultGasLimit)

	_, err := connector.Invoke(context.Background(), types.PullResponse{
		ChainType: types.ChainTypeRadix,
		Radix:     &types.RadixProof{PairIndexes: []uint32{0}, ProofBytes: "0x00"},
	})

	var mismatch *sdkerrors.ChainMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestConnector_Close(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	connector := newSimConnector(t, sim, contractAddress, evmsim.DefaultGasLimit)

	require.NoError(t, connector.Close())

	_, err := connector.Invoke(context.Background(), proofResponse([]byte{1}))

	var submissionErr *sdkerrors.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, "connector is closed", submissionErr.Reason)
}
