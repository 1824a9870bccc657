package kvstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/redis"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/sqlite"
	"github.com/jhoicas/Inventario-admin/pkg/config"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
)

// Open crea el backend indicado por cfg.Storage.Backend y le aplica el prefijo de claves.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.KeyValueStore, error) {
	log.Info().
		Str("backend", cfg.Storage.Backend).
		Str("prefix", cfg.Storage.Prefix).
		Msg("inicializando almacenamiento clave/valor")

	var (
		kv  repository.KeyValueStore
		err error
	)
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		kv = memory.NewKVRepository()
	case config.BackendSQLite:
		kv, err = sqlite.NewKVRepository(cfg.Storage.SQLitePath)
	case config.BackendPostgres:
		pool, perr := postgres.NewPool(ctx, cfg.DB)
		if perr != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", perr)
		}
		kv, err = postgres.NewKVRepository(ctx, pool)
		if err != nil {
			pool.Close()
		}
	case config.BackendRedis:
		kv, err = redis.NewKVRepository(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		return nil, fmt.Errorf("backend de almacenamiento no soportado: %s", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", cfg.Storage.Backend, err)
	}
	return WithPrefix(kv, cfg.Storage.Prefix), nil
}
