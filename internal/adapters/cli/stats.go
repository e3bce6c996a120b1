package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dataset counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := o.querier.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("stats failed: %w", err)
			}
			if o.format != FormatTable {
				return writeJSON(cmd.OutOrStdout(), st)
			}
			cmd.Printf("Governorates: %d\n", st.Governorates)
			cmd.Printf("Delegations:  %d\n", st.Delegations)
			cmd.Printf("Postal codes: %d\n", st.PostalCodes)
			return nil
		},
	}
}
