package sdk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

func TestValidateChainConfig(t *testing.T) {
	t.Parallel()

	valid := types.NewChainConfig("key", "https://rpc.example.com", "0x1", 10)

	tests := []struct {
		name       string
		give       types.ChainConfig
		validators []Validator
		wantField  string
		wantErr    string
	}{
		{
			name: "success",
			give: valid,
			validators: []Validator{
				ValidatorFunc(func() error { return nil }),
			},
		},
		{
			name:    "failure: empty contract address",
			give:    types.NewChainConfig("key", "https://rpc.example.com", "", 10),
			wantErr: "invalid configuration: Key: 'ChainConfig.ContractAddress' Error:Field validation for 'ContractAddress' failed on the 'required' tag",
		},
		{
			name: "failure: chain validator",
			give: valid,
			validators: []Validator{
				ValidatorFunc(func() error { return errors.New("bad address") }),
			},
			wantErr: "invalid configuration: bad address",
		},
		{
			name: "failure: chain validator keeps its config error",
			give: valid,
			validators: []Validator{
				ValidatorFunc(func() error {
					return sdkerrors.NewConfigError("contract_address", errors.New("bad address"))
				}),
			},
			wantField: "contract_address",
			wantErr:   "invalid configuration for contract_address: bad address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateChainConfig(tt.give, tt.validators...)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.EqualError(t, err, tt.wantErr)
			var cfgErr *sdkerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestProofFor(t *testing.T) {
	t.Parallel()

	resp := types.PullResponse{
		ChainType: types.ChainTypeRadix,
		Radix:     &types.RadixProof{PairIndexes: []uint32{0, 21}, ProofBytes: "0xabc123"},
	}

	got, err := ProofFor[types.RadixProof](types.ChainTypeRadix, resp)
	require.NoError(t, err)
	assert.Equal(t, "0xabc123", got.ProofBytes)

	_, err = ProofFor[types.EVMProof](types.ChainTypeEVM, resp)
	var mismatch *sdkerrors.ChainMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, types.ChainTypeEVM, mismatch.Want)
	assert.Equal(t, types.ChainTypeRadix, mismatch.Got)

	_, err = ProofFor[types.RadixProof](types.ChainTypeRadix, types.PullResponse{ChainType: types.ChainTypeRadix})
	require.EqualError(t, err, "radix pull response carries no radix proof")

	resp.Radix = &types.RadixProof{PairIndexes: []uint32{0}}
	_, err = ProofFor[types.RadixProof](types.ChainTypeRadix, resp)
	require.ErrorContains(t, err, "invalid radix proof")
}
