package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseChainType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    ChainType
		wantErr string
	}{
		{name: "evm", give: "evm", want: ChainTypeEVM},
		{name: "aptos", give: "aptos", want: ChainTypeAptos},
		{name: "radix", give: "radix", want: ChainTypeRadix},
		{name: "sui", give: "sui", want: ChainTypeSui},
		{name: "failure: unknown", give: "solana", wantErr: `unsupported chain type: "solana"`},
		{name: "failure: case sensitive", give: "EVM", wantErr: `unsupported chain type: "EVM"`},
		{name: "failure: empty", give: "", wantErr: `unsupported chain type: ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseChainType(tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				require.ErrorIs(t, err, ErrUnsupportedChainType)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_SupportedChainTypes(t *testing.T) {
	t.Parallel()

	got := SupportedChainTypes()
	assert.ElementsMatch(t, []ChainType{ChainTypeEVM, ChainTypeAptos, ChainTypeRadix, ChainTypeSui}, got)

	// Mutating the copy must not change the supported set
	got[0] = "bogus"
	require.NoError(t, ChainTypeEVM.Validate())
}
