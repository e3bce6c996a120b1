// Package cli exposes the municipality queries as munictl subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samirrijal/tunimap/internal/adapters/geojson"
	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/ports"
)

// Output formats.
const (
	FormatTable   = "table"
	FormatJSON    = "json"
	FormatGeoJSON = "geojson"
)

type options struct {
	querier ports.MunicipalityQuerier
	version string
	format  string
}

// NewRootCmd builds the munictl command tree around querier. Each call
// returns fresh commands and flags.
func NewRootCmd(querier ports.MunicipalityQuerier, version string) *cobra.Command {
	o := &options{querier: querier, version: version}

	root := &cobra.Command{
		Use:   "munictl",
		Short: "Query Tunisian governorates and delegations",
		Long: `munictl runs the same queries as the TuniMap API against a local
copy of the dataset: search with governorate/delegation fallback, postal
code lookup, radius queries and spelling suggestions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch o.format {
			case FormatTable, FormatJSON, FormatGeoJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want table, json or geojson)", o.format)
			}
		},
	}
	root.PersistentFlags().StringVarP(&o.format, "output", "o", FormatTable, "output format: table, json or geojson")

	root.AddCommand(
		newSearchCmd(o),
		newNearCmd(o),
		newStatsCmd(o),
		newSuggestCmd(o),
		newVersionCmd(o),
	)
	return root
}

func newVersionCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("munictl version %s\n", o.version)
		},
	}
}

// writeGovernorates renders a governorate list in the selected format.
func (o *options) writeGovernorates(cmd *cobra.Command, govs []domain.Governorate) error {
	switch o.format {
	case FormatJSON:
		return writeJSON(cmd.OutOrStdout(), govs)
	case FormatGeoJSON:
		data, err := geojson.Marshal(govs)
		if err != nil {
			return fmt.Errorf("failed to marshal geojson: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(govs) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	for _, g := range govs {
		cmd.Printf("%s (%s) [%d]\n", g.Name, g.NameAr, len(g.Delegations))
		for _, d := range g.Delegations {
			cmd.Printf("  %-28s %-6s %9.5f %9.5f  %s\n", d.Name, d.PostalCode, d.Latitude, d.Longitude, d.NameAr)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return nil
}
