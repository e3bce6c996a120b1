package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samirrijal/tunimap/internal/adapters/cli"
	"github.com/samirrijal/tunimap/internal/adapters/dataset"
	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/ports"
	"github.com/samirrijal/tunimap/internal/core/usecases"
	"github.com/samirrijal/tunimap/internal/pkg/config"
	"github.com/samirrijal/tunimap/internal/pkg/logging"
)

var version = "dev"

func main() {
	cfg, err := config.Load("munictl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so JSON output can be piped.
	logging.SetupWriter(os.Stderr, "warn", "text")

	var src ports.DatasetSource = dataset.EmbeddedSource{}
	if cfg.Dataset.Source == config.SourceFile {
		src = dataset.FileSource{Path: cfg.Dataset.Path}
	}

	ctx := context.Background()
	store, err := dataset.Load(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dataset: %v\n", err)
		os.Exit(1)
	}

	svc := usecases.NewMunicipalityService(store, usecases.MunicipalityOptions{
		Nearby:             domain.NearbyPolicy{ZeroDisablesFilter: cfg.Nearby.ZeroDisablesFilter},
		SuggestMaxDistance: cfg.Search.SuggestMaxDistance,
	})

	root := cli.NewRootCmd(svc, version)
	root.SetOut(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
