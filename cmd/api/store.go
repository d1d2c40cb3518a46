package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doctor-channel/internal/config"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/internal/repository/memory"
	"github.com/jwalitptl/doctor-channel/internal/repository/mongo"
	"github.com/jwalitptl/doctor-channel/internal/repository/postgres"
)

// openStore connects the backend named by cfg.Driver and prepares its schema.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (repository.Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "mongo":
		client, err := mongo.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, client, cfg.MongoDatabase); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongodb")
		return mongo.NewStore(client, cfg.MongoDatabase), nil

	case "postgres":
		db, err := postgres.NewDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("database", cfg.Name).Msg("connected to postgres")
		return postgres.NewStore(db), nil

	case "memory":
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
