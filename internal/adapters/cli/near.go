package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

func newNearCmd(o *options) *cobra.Command {
	var lat, lng, radius string

	cmd := &cobra.Command{
		Use:   "near",
		Short: "List delegations within a radius of a point",
		Long: `Lists delegations whose centroid lies within --radius kilometers of
(--lat, --lng). Missing or unparsable values return the whole dataset,
matching the API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			govs, err := o.querier.Nearby(cmd.Context(), domain.ParseNearbyParams(lat, lng, radius))
			if err != nil {
				return fmt.Errorf("nearby query failed: %w", err)
			}
			return o.writeGovernorates(cmd, govs)
		},
	}

	cmd.Flags().StringVar(&lat, "lat", "", "latitude in degrees")
	cmd.Flags().StringVar(&lng, "lng", "", "longitude in degrees")
	cmd.Flags().StringVarP(&radius, "radius", "r", "", "radius in kilometers")
	return cmd
}
