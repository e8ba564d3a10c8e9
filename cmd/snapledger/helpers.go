package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/snapledger/snapledger/internal/config"
	"github.com/snapledger/snapledger/internal/storage"
)

// openStorage opens the configured sqlite database and brings the schema up
// to date. The caller owns closing it.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		closeStorage(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeStorage(db *storage.SQLiteStorage) {
	if err := db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}
