package sdk

import (
	"errors"
	"fmt"

	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

// Validator checks a chain specific value, such as a contract address.
//
// Implement this to provide chain-specific validation for connector configuration.
type Validator interface {
	Validate() error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func() error

func (f ValidatorFunc) Validate() error {
	return f()
}

// ValidateChainConfig runs the common shape checks on cfg, then each chain specific
// validator in order. Every failure is returned as a ConfigError.
func ValidateChainConfig(cfg types.ChainConfig, validators ...Validator) error {
	if err := cfg.Validate(); err != nil {
		return sdkerrors.NewConfigError("", err)
	}

	for _, v := range validators {
		if err := v.Validate(); err != nil {
			var cfgErr *sdkerrors.ConfigError
			if errors.As(err, &cfgErr) {
				return cfgErr
			}

			return sdkerrors.NewConfigError("", err)
		}
	}

	return nil
}

// ProofFor extracts the proof variant a connector for want can submit. It returns a
// ChainMismatchError when resp is for another chain family and an error when the variant
// is missing or incomplete.
func ProofFor[T any](want types.ChainType, resp types.PullResponse) (*T, error) {
	if resp.ChainType != want {
		return nil, sdkerrors.NewChainMismatchError(want, resp.ChainType)
	}

	proof, ok := resp.Proof().(*T)
	if !ok || proof == nil {
		return nil, fmt.Errorf("%s pull response carries no %s proof", resp.ChainType, want)
	}

	if err := types.ValidateProof(proof); err != nil {
		return nil, fmt.Errorf("invalid %s proof: %w", want, err)
	}

	return proof, nil
}
