package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
	"github.com/jhoicas/Inventario-admin/pkg/observable"
)

// Collection colección observable de una entidad, respaldada por una clave del almacenamiento.
// Los slices publicados nunca se modifican después de publicarse; quien los recibe no debe modificarlos.
type Collection[T any] struct {
	name string
	key  string
	cell *observable.Cell[[]T]

	// view lock de lectura compartido con el Writer: un commit de varias colecciones es atómico para los lectores.
	view *sync.RWMutex

	// clone copia profunda de un elemento; nil si T no contiene referencias.
	clone func(T) T
}

func newCollection[T any](key string, view *sync.RWMutex, clone func(T) T) *Collection[T] {
	return &Collection[T]{name: key, key: key, cell: observable.New[[]T](nil), view: view, clone: clone}
}

// Current copia de la colección actual en orden de inserción.
func (c *Collection[T]) Current() []T {
	out := slices.Clone(c.snapshot())
	if c.clone != nil {
		for i := range out {
			out[i] = c.clone(out[i])
		}
	}
	return out
}

// Len número de elementos actuales.
func (c *Collection[T]) Len() int {
	return len(c.snapshot())
}

// Changes emite la colección completa de inmediato y en cada commit posterior.
// Un lector lento solo recibe el valor más reciente. El canal se cierra al cancelar ctx.
// Cada suscripción mantiene una goroutine hasta que ctx se cancela: no usar un ctx que nunca termina.
// Los slices recibidos son compartidos y no deben modificarse.
func (c *Collection[T]) Changes(ctx context.Context) <-chan []T {
	return c.cell.Subscribe(ctx)
}

// Observe registra fn para cada commit, invocada de forma síncrona dentro del commit.
func (c *Collection[T]) Observe(fn func([]T)) (cancel func()) {
	return c.cell.Observe(fn)
}

// snapshot slice publicado, sin copiar. Ningún commit puede estar a medias mientras se lee.
func (c *Collection[T]) snapshot() []T {
	c.view.RLock()
	defer c.view.RUnlock()
	return c.cell.Get()
}

// detach copia profunda de un elemento antes de entregarlo fuera del store.
func (c *Collection[T]) detach(v T) T {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}

// load rehidrata desde kv. Clave ausente = colección vacía; JSON inválido = error.
func (c *Collection[T]) load(ctx context.Context, kv repository.KeyValueStore) error {
	raw, ok, err := kv.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("leer %s: %w", c.key, err)
	}
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("decodificar %s: %w", c.key, err)
	}
	c.cell.Set(items)
	return nil
}

// find índice del primer elemento que cumple match, -1 si no hay.
func find[T any](items []T, match func(T) bool) int {
	return slices.IndexFunc(items, match)
}

// with copia de items con v añadido al final.
func with[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, v)
}

// replaced copia de items con la posición i sustituida por v.
func replaced[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

// without copia de items sin la posición i.
func without[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
