package pull

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func buildProofCmd(flags *rootFlags) *cobra.Command {
	cmd := cobra.Command{
		Use:   "proof",
		Short: "Pull a proof and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, req, err := flags.setup()
			if err != nil {
				return err
			}

			resp, err := client.GetProof(ctx, req)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp.Proof(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	return &cmd
}
