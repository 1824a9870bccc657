// Package kvstore selecciona y decora el backend clave/valor según la configuración.
package kvstore

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

var _ repository.KeyValueStore = (*Prefixed)(nil)

// Prefixed antepone un prefijo fijo a todas las claves (espacio de nombres de la aplicación).
type Prefixed struct {
	inner  repository.KeyValueStore
	prefix string
}

// WithPrefix envuelve inner. Con prefijo vacío devuelve inner sin envolver.
func WithPrefix(inner repository.KeyValueStore, prefix string) repository.KeyValueStore {
	if prefix == "" {
		return inner
	}
	return &Prefixed{inner: inner, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key string, value json.RawMessage) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}

func (p *Prefixed) Close() error {
	return p.inner.Close()
}
