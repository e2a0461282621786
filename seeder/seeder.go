package main

import (
	"context"
	"flag"
	"fitconsole/api/cache"
	seedservice "fitconsole/api/services/seed"
	"fitconsole/pkg/config"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/store"
	"log"
	"os"
	"time"
)

// Load the env and insert the sample batch straight into the store.
func main() {
	idempotent := flag.Bool("idempotent", false, "key the records by content so seeding twice overwrites")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't load the configuration: %v", err)
	}
	if err := cfg.RequireSharedStore(); err != nil {
		log.Fatal(err)
	}

	seederLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}
	defer seederLogger.Close()
	seederLogger.WithMirror(os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	kvStore, err := store.Open(ctx, cfg, seederLogger)
	if err != nil {
		log.Fatalf("Couldn't open the store: %v", err)
	}
	defer kvStore.Close()

	seeder := seedservice.NewSeedService(&seedservice.SeedServiceDeps{
		Store:      kvStore,
		StatsCache: cache.NewStatsCache(nil, 0),
		Logger:     seederLogger,
	})

	if _, err := seeder.Seed(ctx, *idempotent); err != nil {
		log.Fatalf("Couldn't seed the sample data: %v", err)
	}
}
