package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVRepo)(nil)

// KVRepo implementación del puerto KeyValueStore sobre PostgreSQL (tabla kv_store, valor JSONB).
type KVRepo struct {
	q     Querier
	close func()
}

// NewKVRepository asegura el esquema y construye el adaptador. Close cierra el pool.
func NewKVRepository(ctx context.Context, pool *pgxpool.Pool) (*KVRepo, error) {
	r := &KVRepo{q: pool, close: pool.Close}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *KVRepo) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := r.q.Exec(ctx, query); err != nil {
		return fmt.Errorf("crear tabla kv_store: %w", err)
	}
	return nil
}

// Get obtiene el valor de una clave. JSONB no conserva espacios ni orden de campos; sí el contenido.
func (r *KVRepo) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value []byte
	err := r.q.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return json.RawMessage(value), true, nil
}

// Set inserta o reemplaza el valor de una clave.
func (r *KVRepo) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, key, []byte(value)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Close() error {
	if r.close != nil {
		r.close()
	}
	return nil
}
