package pull

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pullsdk "github.com/IntersectLabs/supra-oracle-pull"
)

// DefaultRelayTimeout bounds connecting, submitting and waiting for the transaction.
const DefaultRelayTimeout = 5 * time.Minute

// relayContext bounds ctx by timeout. Zero leaves ctx without a deadline.
func relayContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

func buildRelayCmd(flags *rootFlags) *cobra.Command {
	var relayTimeout time.Duration

	cmd := cobra.Command{
		Use:   "relay",
		Short: "Pull a proof and submit it to the pull contract",
		Long: `Pull a proof and submit it in one transaction. The connector is configured through
SECRET_KEY, RPC_URL, CONTRACT_ADDRESS and FEE_LIMIT, read from the environment or the --env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseCtx, client, req, err := flags.setup()
			if err != nil {
				return err
			}
			ctx, cancel := relayContext(baseCtx, relayTimeout)
			defer cancel()

			cfg, err := loadChainConfig(flags.envFile)
			if err != nil {
				return err
			}

			connector, err := newConnector(ctx, req.ChainType, cfg)
			if err != nil {
				cfg.SecretKey.Zero()
				return err
			}
			defer func() { _ = connector.Close() }()

			result, err := pullsdk.Relay(ctx, client, connector, req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Transaction.Hash)

			return nil
		},
	}

	cmd.Flags().DurationVar(&relayTimeout, "relay-timeout", DefaultRelayTimeout,
		"Deadline for connecting, submitting and confirming the transaction, 0 disables it")

	return &cmd
}
