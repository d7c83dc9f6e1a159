package safecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr string
	}{
		{name: "zero", input: "0", want: 0},
		{name: "padded", input: " 21 ", want: 21},
		{name: "max", input: "4294967295", want: 4294967295},
		{name: "overflow", input: "4294967296", wantErr: "exceeds uint32 range"},
		{name: "negative", input: "-1", wantErr: "is negative"},
		{name: "empty", input: "", wantErr: "empty value"},
		{name: "not a number", input: "abc", wantErr: "invalid unsigned integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := StringToUint32(tt.input)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringToUint64(t *testing.T) {
	t.Parallel()

	got, err := StringToUint64("500000")
	require.NoError(t, err)
	assert.Equal(t, uint64(500000), got)

	_, err = StringToUint64("-5")
	require.ErrorContains(t, err, "is negative")
}

func TestStringsToUint32s(t *testing.T) {
	t.Parallel()

	got, err := StringsToUint32s("0,21, 61")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 21, 61}, got)

	got, err = StringsToUint32s("")
	require.NoError(t, err)
	assert.Equal(t, []uint32{}, got)

	_, err = StringsToUint32s("0,,1")
	require.ErrorContains(t, err, "empty value")
}
