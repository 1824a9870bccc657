// Package redis implementa el puerto KeyValueStore sobre Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVRepo)(nil)

// KVRepo guarda cada clave como string JSON sin expiración.
type KVRepo struct {
	client *goredis.Client
}

// Options conexión a Redis.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewKVRepository conecta y verifica con PING.
func NewKVRepository(ctx context.Context, opts Options) (*KVRepo, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return &KVRepo{client: client}, nil
}

func (r *KVRepo) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return json.RawMessage(b), true, nil
}

func (r *KVRepo) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := r.client.Set(ctx, key, []byte(value), 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Close() error {
	return r.client.Close()
}
