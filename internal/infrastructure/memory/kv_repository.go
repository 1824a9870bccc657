// Package memory implementa el puerto KeyValueStore en memoria del proceso (tests y modo efímero).
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVRepo)(nil)

// KVRepo mapa clave -> JSON protegido por mutex. Copia los bytes al entrar y al salir.
type KVRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVRepository construye un almacén vacío.
func NewKVRepository() *KVRepo {
	return &KVRepo{data: make(map[string][]byte)}
}

func (r *KVRepo) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	if !ok {
		return nil, false, nil
	}
	return append(json.RawMessage(nil), v...), true, nil
}

func (r *KVRepo) Set(_ context.Context, key string, value json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *KVRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Keys devuelve las claves almacenadas (orden no definido).
func (r *KVRepo) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	return keys
}

func (r *KVRepo) Close() error { return nil }
