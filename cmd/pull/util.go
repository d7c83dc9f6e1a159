package pull

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	pullsdk "github.com/IntersectLabs/supra-oracle-pull"
	"github.com/IntersectLabs/supra-oracle-pull/internal/utils/safecast"
	"github.com/IntersectLabs/supra-oracle-pull/sdk"
	"github.com/IntersectLabs/supra-oracle-pull/sdk/aptos"
	"github.com/IntersectLabs/supra-oracle-pull/sdk/evm"
	"github.com/IntersectLabs/supra-oracle-pull/sdk/sui"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

const (
	envSecretKey       = "SECRET_KEY"
	envRPCURL          = "RPC_URL"
	envContractAddress = "CONTRACT_ADDRESS"
	envFeeLimit        = "FEE_LIMIT"
)

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	lggr, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

// setup parses the shared flags and returns a context carrying the logger, the oracle
// client and the request to pull.
func (f *rootFlags) setup() (context.Context, *pullsdk.Client, types.PullRequest, error) {
	lggr, err := newLogger(f.verbose)
	if err != nil {
		return nil, nil, types.PullRequest{}, err
	}

	chainType, err := types.ParseChainType(f.chainType)
	if err != nil {
		return nil, nil, types.PullRequest{}, err
	}

	pairs, err := safecast.StringsToUint32s(f.pairs)
	if err != nil {
		return nil, nil, types.PullRequest{}, fmt.Errorf("invalid --pairs: %w", err)
	}

	client, err := pullsdk.NewClient(f.url, pullsdk.WithTimeout(f.timeout), pullsdk.WithLogger(lggr))
	if err != nil {
		return nil, nil, types.PullRequest{}, err
	}

	ctx := sdk.ContextWithLogger(context.Background(), lggr)

	return ctx, client, types.NewPullRequest(chainType, pairs...), nil
}

// loadChainConfig reads the connector configuration from envFile. Variables already set
// in the environment take precedence.
func loadChainConfig(envFile string) (types.ChainConfig, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return types.ChainConfig{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	secret := os.Getenv(envSecretKey)
	if secret == "" {
		return types.ChainConfig{}, errors.New(envSecretKey + " not found in environment or " + envFile)
	}
	_ = os.Unsetenv(envSecretKey)

	feeLimit, err := safecast.StringToUint64(os.Getenv(envFeeLimit))
	if err != nil {
		return types.ChainConfig{}, fmt.Errorf("invalid %s: %w", envFeeLimit, err)
	}

	return types.NewChainConfig(secret, os.Getenv(envRPCURL), os.Getenv(envContractAddress), feeLimit), nil
}

func newConnector(ctx context.Context, chainType types.ChainType, cfg types.ChainConfig) (sdk.Connector, error) {
	switch chainType {
	case types.ChainTypeEVM:
		return evm.NewConnector(ctx, cfg)
	case types.ChainTypeAptos:
		return aptos.NewConnector(ctx, cfg)
	case types.ChainTypeSui:
		return sui.NewConnector(ctx, cfg)
	case types.ChainTypeRadix:
		return nil, errors.New("radix relay needs a notarizer and is only available through the sdk/radix package")
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedChainType, string(chainType))
	}
}
