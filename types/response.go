package types

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
)

// EVMProof is the proof shape served for EVM chains. ProofBytes is submitted as-is as the
// `bytes` argument of the pull contract.
type EVMProof struct {
	PairIndexes []uint32      `json:"pair_indexes" validate:"required"`
	ProofBytes  hexutil.Bytes `json:"proof_bytes" validate:"required"`
}

// AptosProof is the proof shape served for Aptos chains. ProofBytes is passed to the entry
// function as a BCS encoded vector<u8>.
type AptosProof struct {
	PairIndexes []uint32      `json:"pair_indexes" validate:"required"`
	ProofBytes  hexutil.Bytes `json:"proof_bytes" validate:"required"`
}

// RadixProof is the proof shape served for Radix chains. The proof is kept as the string the
// oracle produced, it is embedded in the transaction manifest verbatim.
type RadixProof struct {
	PairIndexes []uint32 `json:"pair_indexes" validate:"required"`
	ProofBytes  string   `json:"proof_bytes" validate:"required"`
}

// SuiProof is the proof shape served for Sui chains. Besides the proof bytes it names the
// shared objects the pull contract reads from.
type SuiProof struct {
	PairIndexes        []uint32      `json:"pair_indexes" validate:"required"`
	DkgObject          string        `json:"dkg_object" validate:"required"`
	OracleHolderObject string        `json:"oracle_holder_object" validate:"required"`
	MerkleRootObject   string        `json:"merkle_root_object" validate:"required"`
	ProofBytes         hexutil.Bytes `json:"proof_bytes" validate:"required"`
}

// PullResponse is the decoded result of a proof pull. It is a tagged union keyed by
// ChainType: exactly one of the chain variants is set, the one matching ChainType.
type PullResponse struct {
	ChainType ChainType `json:"chain_type"`
	// FetchedAt is the local time the proof was received. The oracle does not publish a
	// validity window, callers decide whether a proof is too old to submit.
	FetchedAt time.Time `json:"fetched_at"`

	EVM   *EVMProof   `json:"evm,omitempty"`
	Aptos *AptosProof `json:"aptos,omitempty"`
	Radix *RadixProof `json:"radix,omitempty"`
	Sui   *SuiProof   `json:"sui,omitempty"`
}

// PairIndexes returns the pair indexes echoed by the oracle for the set variant.
func (r PullResponse) PairIndexes() []uint32 {
	switch r.ChainType {
	case ChainTypeEVM:
		if r.EVM != nil {
			return r.EVM.PairIndexes
		}
	case ChainTypeAptos:
		if r.Aptos != nil {
			return r.Aptos.PairIndexes
		}
	case ChainTypeRadix:
		if r.Radix != nil {
			return r.Radix.PairIndexes
		}
	case ChainTypeSui:
		if r.Sui != nil {
			return r.Sui.PairIndexes
		}
	}

	return nil
}

// Proof returns the variant matching ChainType, or nil if it is not set.
func (r PullResponse) Proof() any {
	switch r.ChainType {
	case ChainTypeEVM:
		return nilIfEmpty(r.EVM)
	case ChainTypeAptos:
		return nilIfEmpty(r.Aptos)
	case ChainTypeRadix:
		return nilIfEmpty(r.Radix)
	case ChainTypeSui:
		return nilIfEmpty(r.Sui)
	default:
		return nil
	}
}

// Validate checks that exactly the variant matching ChainType is set and that it carries
// every required field.
func (r PullResponse) Validate() error {
	if err := r.ChainType.Validate(); err != nil {
		return err
	}

	set := 0
	for _, v := range []bool{r.EVM != nil, r.Aptos != nil, r.Radix != nil, r.Sui != nil} {
		if v {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("pull response must carry exactly one proof variant, got %d", set)
	}

	proof := r.Proof()
	if proof == nil {
		return fmt.Errorf("pull response for chain type %q carries a different proof variant", r.ChainType)
	}

	return ValidateProof(proof)
}

// ValidateProof runs the tag based validation of a proof variant.
func ValidateProof(proof any) error {
	var validate = validator.New()

	return validate.Struct(proof)
}

func nilIfEmpty[T any](p *T) any {
	if p == nil {
		return nil
	}

	return p
}
