package aptos

import (
	"fmt"
	"strings"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
	"github.com/aptos-labs/aptos-go-sdk/crypto"

	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

func hexToAddress(address string) (aptos.AccountAddress, error) {
	addr := aptos.AccountAddress{}
	if err := addr.ParseStringRelaxed(address); err != nil {
		return aptos.AccountAddress{}, err
	}

	return addr, nil
}

// accountFromSecret builds an Ed25519 account from a hex or AIP-80 encoded private key. The
// decode error is replaced so no part of the key ends up in error messages.
func accountFromSecret(secret *types.SecretKey) (*aptos.Account, error) {
	var account *aptos.Account
	err := secret.Use(func(raw []byte) error {
		key := &crypto.Ed25519PrivateKey{}
		if err := key.FromHex(strings.TrimSpace(string(raw))); err != nil {
			return err
		}

		var err error
		account, err = aptos.NewAccountFromSigner(key)

		return err
	})
	if err != nil {
		return nil, sdkerrors.NewConfigError("secret_key", fmt.Errorf("not a valid Ed25519 private key"))
	}

	return account, nil
}

// serializeProof encodes the proof as the BCS vector<u8> argument of the entry function.
func serializeProof(proof []byte) ([]byte, error) {
	ser := bcs.Serializer{}
	ser.WriteBytes(proof)
	if err := ser.Error(); err != nil {
		return nil, err
	}

	return ser.ToBytes(), nil
}
