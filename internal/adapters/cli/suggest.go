package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/usecases"
)

func newSuggestCmd(o *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest [term]",
		Short: "Suggest names close to a misspelled term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := o.querier.Suggest(cmd.Context(), args[0], limit)
			if err != nil {
				return fmt.Errorf("suggest failed: %w", err)
			}
			if o.format != FormatTable {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			if len(out) == 0 {
				cmd.Println("No suggestions.")
				return nil
			}
			for i, s := range out {
				where := s.Name
				if s.Kind == domain.SuggestionDelegation {
					where = s.Name + ", " + s.Governorate
				}
				cmd.Printf("  [%d] %s (%s, distance %d)\n", i+1, where, s.Kind, s.Distance)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", usecases.DefaultSuggestLimit, "maximum number of suggestions")
	return cmd
}
