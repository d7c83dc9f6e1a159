package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PullRequest_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give PullRequest
		want string
	}{
		{
			name: "with pair indexes",
			give: NewPullRequest(ChainTypeRadix, 0, 21),
			want: `{"pair_indexes":[0,21],"chain_type":"radix"}`,
		},
		{
			name: "nil pair indexes are sent as an empty array",
			give: PullRequest{ChainType: ChainTypeEVM},
			want: `{"pair_indexes":[],"chain_type":"evm"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.give)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func Test_PullRequest_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewPullRequest(ChainTypeSui).Validate())
	require.ErrorIs(t, NewPullRequest("tron", 1).Validate(), ErrUnsupportedChainType)
}
