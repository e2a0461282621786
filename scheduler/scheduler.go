package main

import (
	"context"
	"fitconsole/api/cache"
	statsservice "fitconsole/api/services/stats"
	"fitconsole/pkg/config"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/store"
	"fitconsole/scheduler/jobs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}
	if err := cfg.RequireSharedStore(); err != nil {
		log.Fatal(err)
	}

	schedulerLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}
	defer schedulerLogger.Close()
	if cfg.API.LogToStdout {
		schedulerLogger.WithMirror(os.Stdout)
	}

	kvStore, err := store.Open(context.Background(), cfg, schedulerLogger)
	if err != nil {
		log.Fatal(err)
	}
	defer kvStore.Close()

	// The scheduler never serves reads, the stats are always recomputed.
	stats := statsservice.NewStatsService(&statsservice.StatsServiceDeps{
		Store:      kvStore,
		StatsCache: cache.NewStatsCache(nil, 0),
		Logger:     schedulerLogger,
	})

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Register the stats snapshot job - every day right before midnight UTC.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(
			jobs.NewSnapshotJob(stats, schedulerLogger).Run,
		),
		gocron.WithName("stats-snapshot"),
		gocron.WithTags("stats"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create stats snapshot job: %v", err)
	}

	// Ship the log every hour when a bucket is configured.
	if cfg.BucketEnabled() {
		_, err = s.NewJob(
			gocron.DurationJob(time.Hour),
			gocron.NewTask(
				jobs.NewLogUploadJob(schedulerLogger, cfg.Bucket, "scheduler").Run,
			),
			gocron.WithName("log-upload"),
			gocron.WithTags("logs"),
		)
		if err != nil {
			log.Fatalf("Failed to create log upload job: %v", err)
		}
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		err := s.Shutdown()
		if err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	log.Println("Shutting down scheduler...")
}
