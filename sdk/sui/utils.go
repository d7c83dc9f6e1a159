package sui

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/block-vision/sui-go-sdk/signer"

	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

const (
	AddressLen = 32
	SeedLen    = 32

	// ClockObjectID is the shared sui::clock::Clock object.
	ClockObjectID = "0x6"
)

type Address [AddressLen]uint8

// AddressFromHex parses a Sui address or object ID, left padding short forms like 0x6.
func AddressFromHex(str string) (*Address, error) {
	str = trimHexPrefix(str)
	if str == "" {
		return nil, errors.New("empty address")
	}
	if len(str)%2 != 0 {
		str = "0" + str
	}
	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, err
	}
	if len(data) > AddressLen {
		return nil, errors.New("address length exceeds 32 bytes")
	}
	var address Address
	copy(address[AddressLen-len(data):], data)

	return &address, nil
}

func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func trimHexPrefix(str string) string {
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		return str[2:]
	}

	return str
}

// signerFromSecret builds an Ed25519 signer from a hex encoded 32 byte seed.
func signerFromSecret(secret *types.SecretKey) (*signer.Signer, error) {
	var s *signer.Signer
	err := secret.Use(func(raw []byte) error {
		seed, err := hex.DecodeString(trimHexPrefix(strings.TrimSpace(string(raw))))
		if err != nil {
			return err
		}
		defer clear(seed)
		if len(seed) != SeedLen {
			return fmt.Errorf("seed must be %d bytes", SeedLen)
		}
		s = signer.NewSigner(seed)

		return nil
	})
	if err != nil {
		return nil, sdkerrors.NewConfigError("secret_key", errors.New("not a hex encoded 32 byte Ed25519 seed"))
	}

	return s, nil
}

// objectArgument normalizes an object ID from the proof response for a move call.
func objectArgument(field, id string) (string, error) {
	addr, err := AddressFromHex(id)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q: %w", field, id, err)
	}

	return addr.Hex(), nil
}

// bytesArgument encodes a vector<u8> pure argument as the JSON number array the RPC expects.
func bytesArgument(b []byte) []uint16 {
	out := make([]uint16, len(b))
	for i, v := range b {
		out[i] = uint16(v)
	}

	return out
}
