// Package observable implementa una celda de estado observable: valor actual más
// suscripciones con reemisión del último valor (replay-latest).
package observable

import (
	"context"
	"sync"
)

// Cell guarda un valor y lo publica a suscriptores y observadores en cada cambio.
// Los suscriptores por canal nunca bloquean al publicador: si no han leído el valor
// anterior, este se reemplaza por el más reciente.
type Cell[T any] struct {
	mu        sync.RWMutex
	value     T
	nextID    uint64
	subs      map[uint64]chan T
	observers map[uint64]func(T)
}

// New crea una celda con valor inicial.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value:     initial,
		subs:      make(map[uint64]chan T),
		observers: make(map[uint64]func(T)),
	}
}

// Get devuelve el valor actual.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set reemplaza el valor y lo publica.
func (c *Cell[T]) Set(v T) {
	c.Swap(v)()
}

// Swap reemplaza el valor sin notificar y devuelve la función que publica ese valor.
// Permite confirmar varias celdas antes de que cualquier observador vea alguna.
func (c *Cell[T]) Swap(v T) (publish func()) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	return func() { c.publish(v) }
}

func (c *Cell[T]) publish(v T) {
	c.mu.Lock()
	for _, ch := range c.subs {
		offerLatest(ch, v)
	}
	observers := make([]func(T), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
}

// offerLatest descarta el valor pendiente (si lo hay) y deja v. Debe llamarse con c.mu tomado.
func offerLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

// Subscribe devuelve un canal que recibe el valor actual de inmediato y luego cada valor publicado.
// El canal se cierra al cancelar ctx; dejar de escuchar no tiene efectos sobre la celda.
func (c *Cell[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.value
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subs, id)
		close(ch)
		c.mu.Unlock()
	}()
	return ch
}

// Observe registra fn para que se invoque de forma síncrona con cada valor publicado.
// fn no recibe el valor actual al registrarse. La función devuelta cancela el registro.
func (c *Cell[T]) Observe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// Subscribers número de suscripciones por canal activas.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}
