package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/hearthaudit/hearth/internal/config"
	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/service"
	"github.com/hearthaudit/hearth/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseUUIDArg parses a positional ID argument with a friendlier error
// than the raw uuid message.
func parseUUIDArg(arg, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q is not a valid %s ID", arg, what)
	}
	return id, nil
}

// resolveHome accepts a home ID or a case-insensitive name and returns
// the full home aggregate.
func resolveHome(ctx context.Context, store service.Storage, ref string) (*model.Home, error) {
	if ref == "" {
		return nil, fmt.Errorf("a home must be specified with --home")
	}

	if id, err := uuid.Parse(ref); err == nil {
		return store.GetHome(ctx, id)
	}

	homes, err := store.ListHomes(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range homes {
		if strings.EqualFold(h.Name, ref) {
			return store.GetHome(ctx, h.ID)
		}
	}
	return nil, fmt.Errorf("no home named %q; run 'hearth homes list'", ref)
}
