package pull

import (
	"time"

	"github.com/spf13/cobra"
)

// flags shared by every subcommand.
type rootFlags struct {
	url       string
	chainType string
	pairs     string
	timeout   time.Duration
	envFile   string
	verbose   bool
}

func BuildPullCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := cobra.Command{
		Use:   "supra-pull",
		Short: "Pull oracle proofs and relay them on chain",
		Long: `Pull price proofs from the oracle REST service for a set of pair indexes
and optionally submit them to the pull contract of an EVM, Aptos or Sui chain.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.url, "url", "", "Base URL of the oracle REST service")
	cmd.PersistentFlags().StringVar(&flags.chainType, "chain", "", "Chain type of the proof: evm, aptos, sui or radix")
	cmd.PersistentFlags().StringVar(&flags.pairs, "pairs", "", "Comma separated pair indexes, e.g. 0,21")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 30*time.Second, "Timeout of the proof pull")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env", ".env", "File holding SECRET_KEY, RPC_URL, CONTRACT_ADDRESS and FEE_LIMIT")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output")
	_ = cmd.MarkPersistentFlagRequired("url")
	_ = cmd.MarkPersistentFlagRequired("chain")

	cmd.AddCommand(buildProofCmd(flags))
	cmd.AddCommand(buildRelayCmd(flags))

	return &cmd
}
