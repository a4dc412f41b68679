package main

import (
	"context"
	"fmt"

	"github.com/kestrelworks/glidepath/internal/common"
	"github.com/kestrelworks/glidepath/internal/config"
	"github.com/kestrelworks/glidepath/internal/service"
	"github.com/kestrelworks/glidepath/internal/storage"
	"github.com/spf13/viper"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to open database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
