package types

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrMissingSecretKey is returned when a chain config carries no key material.
var ErrMissingSecretKey = errors.New("secret key is required")

// ChainConfig is the connection configuration shared by every chain connector.
type ChainConfig struct {
	// SecretKey signs the proof transactions. It is required but never serialized.
	SecretKey *SecretKey `json:"-"`
	// RPCURL is the chain node (or gateway) endpoint.
	RPCURL string `json:"rpcUrl" validate:"required,url"`
	// ContractAddress is the destination contract, package or component. Its format is
	// checked by the connector for the chain family.
	ContractAddress string `json:"contractAddress" validate:"required"`
	// FeeLimit is the gas or fee ceiling in the chain's native unit.
	FeeLimit uint64 `json:"feeLimit" validate:"gt=0"`
}

// NewChainConfig builds a ChainConfig from caller supplied literals.
func NewChainConfig(secretKey, rpcURL, contractAddress string, feeLimit uint64) ChainConfig {
	return ChainConfig{
		SecretKey:       NewSecretKeyFromString(secretKey),
		RPCURL:          rpcURL,
		ContractAddress: contractAddress,
		FeeLimit:        feeLimit,
	}
}

// Validate runs the shape checks common to every chain family.
func (c ChainConfig) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.SecretKey.Empty() {
		return ErrMissingSecretKey
	}

	return nil
}
