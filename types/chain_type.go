package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
	"slices"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainType is the tag the oracle uses to select the proof encoding for a destination chain
// family. It is sent as the `chain_type` field of a pull request.
type ChainType string

const (
	ChainTypeEVM   ChainType = chainsel.FamilyEVM
	ChainTypeAptos ChainType = chainsel.FamilyAptos
	ChainTypeSui   ChainType = chainsel.FamilySui
	// ChainTypeRadix has no chain-selectors family.
	ChainTypeRadix ChainType = "radix"
)

// ErrUnsupportedChainType is returned when a chain type tag is not one the oracle serves.
var ErrUnsupportedChainType = errors.New("unsupported chain type")

// supportedChainTypes is the list of chain families the oracle serves proofs for
var supportedChainTypes = []ChainType{
	ChainTypeEVM,
	ChainTypeAptos,
	ChainTypeRadix,
	ChainTypeSui,
}

// SupportedChainTypes returns a copy of the chain types the oracle serves proofs for.
func SupportedChainTypes() []ChainType {
	return slices.Clone(supportedChainTypes)
}

// ParseChainType converts a string to a ChainType, failing on unknown tags.
func ParseChainType(s string) (ChainType, error) {
	ct := ChainType(s)
	if err := ct.Validate(); err != nil {
		return "", err
	}

	return ct, nil
}

// Validate checks that the chain type is one of the supported tags.
func (c ChainType) Validate() error {
	if !slices.Contains(supportedChainTypes, c) {
		return fmt.Errorf("%w: %q", ErrUnsupportedChainType, string(c))
	}

	return nil
}

func (c ChainType) String() string {
	return string(c)
}
