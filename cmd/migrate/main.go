package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/samirrijal/tunimap/internal/adapters/dataset"
	"github.com/samirrijal/tunimap/internal/adapters/postgres"
	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/pkg/config"
	"github.com/samirrijal/tunimap/internal/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate <up|seed> [dataset.json]")
	}

	// Migrations always talk to Postgres, whatever the API serves from.
	os.Setenv("TUNIMAP_DATASET_SOURCE", config.SourcePostgres)
	cfg, err := config.Load("tunimap-migrate")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(cfg.Log.Level, "text")

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Database.DSN(), 2)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "up":
		runMigrations(ctx, db)
	case "seed":
		path := ""
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		runSeed(ctx, db, path)
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

func runMigrations(ctx context.Context, db *postgres.DB) {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		log.Fatalf("list migrations: %v", err)
	}
	if len(files) == 0 {
		log.Fatal("no migrations found in ./migrations")
	}
	sort.Strings(files)

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			log.Fatalf("read %s: %v", f, err)
		}

		_, err = db.Pool.Exec(ctx, string(data))
		if err != nil {
			log.Fatalf("exec %s: %v", f, err)
		}

		fmt.Printf("OK  %s\n", f)
	}

	log.Println("all migrations applied")
}

// runSeed replaces the stored dataset with the snapshot at path, or the
// embedded one when path is empty.
func runSeed(ctx context.Context, db *postgres.DB, path string) {
	var (
		govs []domain.Governorate
		err  error
	)
	if path == "" {
		govs, err = dataset.EmbeddedSource{}.Load(ctx)
	} else {
		govs, err = dataset.FileSource{Path: path}.Load(ctx)
	}
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	if err := dataset.Validate(govs); err != nil {
		log.Fatalf("invalid dataset: %v", err)
	}

	total := 0
	for _, g := range govs {
		total += len(g.Delegations)
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Seeding delegations"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	repo := postgres.NewMunicipalityRepo(db)
	if err := repo.Seed(ctx, govs, func(n int) { _ = bar.Add(n) }); err != nil {
		log.Fatalf("seed: %v", err)
	}
	_ = bar.Finish()

	log.Printf("seeded %d governorates, %d delegations", len(govs), total)
}
