package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

// SimulatedEVMChainID is the chain ID used for simulated chains.
const SimulatedEVMChainID = 1337

// ContractDeployBackend is the node API the connector needs. *ethclient.Client and the
// simulated backend client satisfy it.
type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// closer is implemented by backends the connector dialed itself.
type closer interface {
	Close()
}

func validateContractAddress(address string) error {
	if !common.IsHexAddress(address) {
		return sdkerrors.NewConfigError("contract_address", fmt.Errorf("%q is not a hex encoded EVM address", address))
	}

	return nil
}

// parsePrivateKey decodes a hex secp256k1 key, with or without 0x prefix. The decode error is
// replaced so no part of the key ends up in error messages.
func parsePrivateKey(secret *types.SecretKey) (*ecdsa.PrivateKey, error) {
	var key *ecdsa.PrivateKey
	err := secret.Use(func(raw []byte) error {
		s := strings.TrimPrefix(strings.TrimPrefix(string(raw), "0x"), "0X")

		var err error
		key, err = crypto.HexToECDSA(s)

		return err
	})
	if err != nil {
		return nil, sdkerrors.NewConfigError("secret_key", errors.New("not a hex encoded secp256k1 private key"))
	}

	return key, nil
}

// zeroKey overwrites the scalar of key.
func zeroKey(key *ecdsa.PrivateKey) {
	if key == nil || key.D == nil {
		return
	}

	b := key.D.Bits()
	for i := range b {
		b[i] = 0
	}
	key.D.SetInt64(0)
}
