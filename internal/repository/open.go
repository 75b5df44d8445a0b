// Package repository selects and opens the configured EventStore backend.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"eventmanager/config"
	"eventmanager/internal/domain"
	badgerstore "eventmanager/internal/repository/badger"
	"eventmanager/internal/repository/dynamodb"
	"eventmanager/internal/repository/sqlstore"
)

// Open builds the store named by cfg.StoreDriver. The returned func releases
// whatever the backend holds open and is never nil.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.EventStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.ClientConfig{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, noop, err
		}
		store, err := dynamodb.NewEventStore(client, cfg.EventsTable)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using dynamodb event store", "table", cfg.EventsTable, "endpoint", cfg.DynamoDBEndpoint)
		return store, noop, nil

	case config.StoreBadger:
		db, err := badgerstore.Open(cfg.BadgerPath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using badger event store", "path", cfg.BadgerPath)
		return badgerstore.NewEventStore(db, logger), db.Close, nil

	case config.StorePostgres:
		db, err := sqlstore.Open(ctx, sqlstore.Postgres, cfg.DBUrl)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using postgres event store")
		return sqlstore.NewEventStore(db, sqlstore.Postgres), db.Close, nil

	case config.StoreSQLite:
		db, err := sqlstore.Open(ctx, sqlstore.SQLite, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using sqlite event store", "path", cfg.SQLitePath)
		return sqlstore.NewEventStore(db, sqlstore.SQLite), db.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown event store %q", cfg.StoreDriver)
}
