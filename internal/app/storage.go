package app

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pokedex/config"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/internal/repo/memory"
	"github.com/Gunvolt24/pokedex/internal/repo/postgres"
	"github.com/Gunvolt24/pokedex/internal/repo/sqlite"
)

// OpenKVStore — открывает хранилище ключ-значение по драйверу из конфигурации.
// Возвращает функцию закрытия; для memory она пустая.
func OpenKVStore(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.KVStore, Cleanup, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warnf(ctx, "storage=memory: favorites will not survive restart")
		return memory.NewKVStore(nil), func() {}, nil

	case config.StorageSQLite:
		kv, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, func() {}, fmt.Errorf("open sqlite %s: %w", cfg.Storage.SQLitePath, err)
		}
		log.Infof(ctx, "storage=sqlite path=%s", cfg.Storage.SQLitePath)
		return kv, func() {
			if err := kv.Close(); err != nil {
				log.Warnf(ctx, "sqlite close: %v", err)
			}
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, func() {}, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, func() {}, fmt.Errorf("migrate: %w", err)
		}
		log.Infof(ctx, "storage=postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewKVStore(pool), pool.Close, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
