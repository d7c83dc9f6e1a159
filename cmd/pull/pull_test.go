package pull

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IntersectLabs/supra-oracle-pull/internal/testutils/oraclemock"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

// unsetEnv clears the connector variables for the duration of the test.
func unsetEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{envSecretKey, envRPCURL, envContractAddress, envFeeLimit} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestProofCmd(t *testing.T) {
	oracle := oraclemock.NewServer(t).
		Reply(types.ChainTypeRadix, http.StatusOK, `{"pair_indexes":[0,21],"proof_bytes":"0xabc123"}`)

	cmd := BuildPullCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"proof", "--url", oracle.URL, "--chain", "radix", "--pairs", "0,21"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"pair_indexes":[0,21],"proof_bytes":"0xabc123"}`, out.String())

	reqs := oracle.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, []uint32{0, 21}, reqs[0].PairIndexes)
	assert.Equal(t, types.ChainTypeRadix, reqs[0].ChainType)
}

func TestProofCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown chain",
			args:    []string{"proof", "--url", "http://localhost:1", "--chain", "solana"},
			wantErr: "unsupported chain type",
		},
		{
			name:    "bad pairs",
			args:    []string{"proof", "--url", "http://localhost:1", "--chain", "evm", "--pairs", "0,x"},
			wantErr: "invalid --pairs",
		},
		{
			name:    "missing url",
			args:    []string{"proof", "--chain", "evm"},
			wantErr: `required flag(s) "url" not set`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := BuildPullCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			require.ErrorContains(t, cmd.Execute(), tt.wantErr)
		})
	}
}

func TestRelayCmd_Radix(t *testing.T) {
	unsetEnv(t)
	envFile := writeEnvFile(t, "SECRET_KEY=abc\nRPC_URL=https://gateway.example\nCONTRACT_ADDRESS=component_x\nFEE_LIMIT=10\n")

	oracle := oraclemock.NewServer(t)
	cmd := BuildPullCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"relay", "--url", oracle.URL, "--chain", "radix", "--env", envFile})

	require.ErrorContains(t, cmd.Execute(), "needs a notarizer")
	assert.Empty(t, oracle.Requests())
}

func TestLoadChainConfig(t *testing.T) {
	unsetEnv(t)
	envFile := writeEnvFile(t, "SECRET_KEY=0xdeadbeef\nRPC_URL=http://localhost:8545\nCONTRACT_ADDRESS=0xaa\nFEE_LIMIT=250000\n")

	cfg, err := loadChainConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	assert.Equal(t, "0xaa", cfg.ContractAddress)
	assert.Equal(t, uint64(250000), cfg.FeeLimit)
	assert.False(t, cfg.SecretKey.Empty())
	_, present := os.LookupEnv(envSecretKey)
	assert.False(t, present)
}

func TestLoadChainConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing secret",
			content: "RPC_URL=http://localhost:8545\nFEE_LIMIT=1\n",
			wantErr: "SECRET_KEY not found",
		},
		{
			name:    "negative fee limit",
			content: "SECRET_KEY=abc\nFEE_LIMIT=-1\n",
			wantErr: "invalid FEE_LIMIT",
		},
		{
			name:    "missing fee limit",
			content: "SECRET_KEY=abc\n",
			wantErr: "invalid FEE_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t)

			_, err := loadChainConfig(writeEnvFile(t, tt.content))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRelayContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := relayContext(context.Background(), time.Minute)
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	unbounded, cancelUnbounded := relayContext(context.Background(), 0)
	defer cancelUnbounded()
	_, ok = unbounded.Deadline()
	assert.False(t, ok)
}

func TestRelayCmd_TimeoutFlag(t *testing.T) {
	t.Parallel()

	relay, _, err := BuildPullCmd().Find([]string{"relay"})
	require.NoError(t, err)

	flag := relay.Flags().Lookup("relay-timeout")
	require.NotNil(t, flag)
	assert.Equal(t, DefaultRelayTimeout.String(), flag.DefValue)
}
