// package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

const (
	// DefaultGasLimit is the default gas limit for each transaction in the simulated chain
	DefaultGasLimit = uint64(8000000)

	// DefaultBalance is the default balance for each account in the simulated chain
	DefaultBalance = 1e18

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337
)

// revertingInitCode deploys a contract whose runtime code is PUSH1 0 PUSH1 0 REVERT, so every
// call to it reverts.
const revertingInitCode = "6460006000fd6000526005601bf3"

// SimulatedChain represents a simulated chain with a backend and a list of signers.
type SimulatedChain struct {
	Backend *simulated.Backend
	Signers []*Signer

	// mu serializes Commit calls between the auto-miner and the helpers.
	mu *sync.Mutex
}

// Signer represents a signer with a private key.
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewTransactOpts creates a new transact options with the signer's private key and sets default
// values.
func (s *Signer) NewTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()

	auth, err := bind.NewKeyedTransactorWithChainID(s.PrivateKey, big.NewInt(SimulatedChainID))
	require.NoError(t, err)

	// Set default values
	auth.GasLimit = DefaultGasLimit

	return auth
}

// Address extracts the address from the signer's private key.
func (s *Signer) Address(t *testing.T) common.Address {
	t.Helper()

	publicKeyECDSA, ok := s.PrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		t.Fatal("error casting public key from crypto to ecdsa")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA)
}

// HexKey returns the signer's private key hex encoded, the form connector configs take.
func (s *Signer) HexKey() string {
	return "0x" + hex.EncodeToString(crypto.FromECDSA(s.PrivateKey))
}

// NewSimulatedChain creates a new simulated chain with the given number of signers.
func NewSimulatedChain(t *testing.T, numSigners uint64) SimulatedChain {
	t.Helper()

	// Generate a private key
	signers := make([]*Signer, 0, numSigners)
	for range numSigners {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		signers = append(signers, &Signer{PrivateKey: key})
	}

	// Setup the simulated backend
	genesisAlloc := gethTypes.GenesisAlloc{}
	for _, s := range signers {
		genesisAlloc[s.Address(t)] = gethTypes.Account{
			Balance: big.NewInt(DefaultBalance),
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultGasLimit),
	)
	t.Cleanup(func() { _ = sim.Close() })

	return SimulatedChain{
		Backend: sim,
		Signers: signers,
		mu:      &sync.Mutex{},
	}
}

// Commit mines a block.
func (s *SimulatedChain) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Backend.Commit()
}

// AutoCommit mines a block every interval until the test ends, so code under test that
// waits for a receipt makes progress.
func (s *SimulatedChain) AutoCommit(t *testing.T, interval time.Duration) {
	t.Helper()

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.Commit()
			}
		}
	}()

	t.Cleanup(func() {
		close(done)
		<-stopped
	})
}

// NonceAt returns the confirmed nonce of addr.
func (s *SimulatedChain) NonceAt(t *testing.T, addr common.Address) uint64 {
	t.Helper()

	nonce, err := s.Backend.Client().NonceAt(context.Background(), addr, nil)
	require.NoError(t, err)

	return nonce
}

// DeployRevertingContract deploys a contract that reverts on every call and returns its
// address.
func (s *SimulatedChain) DeployRevertingContract(t *testing.T, signer *Signer) common.Address {
	t.Helper()

	ctx := context.Background()
	client := s.Backend.Client()
	from := signer.Address(t)

	nonce, err := client.PendingNonceAt(ctx, from)
	require.NoError(t, err)
	gasPrice, err := client.SuggestGasPrice(ctx)
	require.NoError(t, err)

	code, err := hex.DecodeString(revertingInitCode)
	require.NoError(t, err)

	tx := gethTypes.NewContractCreation(nonce, big.NewInt(0), 100_000, gasPrice, code)
	signed, err := gethTypes.SignTx(tx, gethTypes.LatestSignerForChainID(big.NewInt(SimulatedChainID)), signer.PrivateKey)
	require.NoError(t, err)
	require.NoError(t, client.SendTransaction(ctx, signed))

	s.Commit()

	receipt, err := client.TransactionReceipt(ctx, signed.Hash())
	require.NoError(t, err)
	require.Equal(t, gethTypes.ReceiptStatusSuccessful, receipt.Status)

	return crypto.CreateAddress(from, nonce)
}
