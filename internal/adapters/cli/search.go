package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

func newSearchCmd(o *options) *cobra.Command {
	var (
		by         string
		postalCode string
		sortField  string
		order      string
	)

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search governorates and delegations",
		Long: `Searches governorate names first (or delegation names with --by delegation)
and falls back to the other level when nothing matches. Without a term every
governorate is listed, then filtered by --postal-code and sorted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := domain.MunicipalityQuery{
				PostalCode: postalCode,
				Sort:       domain.SortField(sortField),
				Order:      domain.ParseSortOrder(order),
			}
			if len(args) == 1 && args[0] != "" {
				q.Term = args[0]
				q.SearchParam = "search"
				q.SearchMode = domain.SearchMode(by).Normalize()
			}

			res, err := o.querier.List(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			if res.Search != nil && res.Search.FallbackApplied && o.format == FormatTable {
				cmd.PrintErrf("no %s matched, showing %s matches\n", res.Search.Requested, res.Search.ModeUsed)
			}
			return o.writeGovernorates(cmd, res.Governorates)
		},
	}

	cmd.Flags().StringVar(&by, "by", string(domain.SearchGovernorate), "level searched first: governorate or delegation")
	cmd.Flags().StringVarP(&postalCode, "postal-code", "p", "", "keep only delegations with this exact postal code")
	cmd.Flags().StringVarP(&sortField, "sort", "s", "", "sort field: name or nameAr")
	cmd.Flags().StringVar(&order, "order", string(domain.OrderAsc), "sort order: asc or desc")
	return cmd
}
