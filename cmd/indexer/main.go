package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"skillcompass/internal/app"
	"skillcompass/internal/config"
	"skillcompass/internal/database/migration"
	"skillcompass/internal/database/seeder"
	"skillcompass/internal/indexer"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent encoding workers")
	seed := flag.Bool("seed", false, "seed skills, roles and courses before indexing")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall build timeout")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	if *seed {
		sr := seeder.Runner{Seeders: seeder.Defaults()}
		if err := sr.Run(ctx, c.DB); err != nil {
			logger.Fatalf("seed failed: %v", err)
		}
		logger.Printf("seed complete")
	}

	b := indexer.NewBuilder(c.Roles, c.Encoder, c.Index, *workers, logger)
	n, err := b.Build(ctx)
	if err != nil {
		logger.Fatalf("index build failed: %v", err)
	}

	if err := c.Cache.InvalidateRecommendations(ctx); err != nil {
		logger.Printf("recommendation cache invalidate failed | error=%v", err)
	}
	logger.Printf("index build complete | roles=%d dir=%s", n, cfg.Index.Dir)
}
