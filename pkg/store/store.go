package store

import (
	"context"
	"errors"
	"fitconsole/pkg/config"
	"fitconsole/pkg/database"
	"fitconsole/pkg/kv"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/redis"
	"fmt"

	"gorm.io/gorm"
)

// Store is the opened key-value store with the connections behind it.
type Store struct {
	kv.Store
	closers []func() error
}

// Close releases every connection the store opened.
func (s *Store) Close() error {
	var errs []error
	for _, closer := range s.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open builds the store selected by the configured driver.
// The durable drivers run the migrations before returning.
func Open(ctx context.Context, cfg *config.Config, log logger.Interface) (*Store, error) {
	store := &Store{}

	switch cfg.KV.Driver {
	case config.DriverMemory:
		store.Store = kv.NewMemoryStore()

	case config.DriverPostgres:
		db, err := openDatabase(cfg, store)
		if err != nil {
			return nil, err
		}
		store.Store = kv.NewPostgresStore(db)

	case config.DriverRedis:
		client := redis.NewClient(cfg.Redis)
		store.closers = append(store.closers, client.Close)
		store.Store = kv.NewRedisStore(client)

	case config.DriverLayered:
		db, err := openDatabase(cfg, store)
		if err != nil {
			return nil, err
		}
		client := redis.NewClient(cfg.Redis)
		store.closers = append(store.closers, client.Close)

		layered := kv.NewLayeredStore(&kv.LayeredStoreDeps{
			Fast:    kv.NewRedisStore(client),
			Durable: kv.NewPostgresStore(db),
			Logger:  log,
		})

		// Warm the redis copy so the first scans don't all hit the database.
		if err := layered.Warm(ctx, kv.Prefix(kv.KindMember), kv.Prefix(kv.KindPayment), kv.Prefix(kv.KindAccess)); err != nil {
			log.Errorf("couldn't warm the redis store: %v", err)
		}
		store.Store = layered

	default:
		return nil, fmt.Errorf("unknown kv driver %q", cfg.KV.Driver)
	}

	log.Infof("using the %s key-value store", cfg.KV.Driver)
	return store, nil
}

// Open the database, migrate it and register its closer.
func openDatabase(cfg *config.Config, store *Store) (*gorm.DB, error) {
	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("couldn't get the sql connection: %w", err)
	}
	store.closers = append(store.closers, sqlDB.Close)

	if err := database.RunMigrations(cfg, sqlDB); err != nil {
		store.Close()
		return nil, err
	}

	return db, nil
}
