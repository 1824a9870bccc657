// Package store contiene los stores en memoria (roles, usuarios, artículos, ventas) con
// validación de reglas de negocio y escritura espejo al almacenamiento clave/valor.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
	"github.com/jhoicas/Inventario-admin/pkg/metrics"
)

// Options dependencias y comportamiento compartidos por todos los stores.
type Options struct {
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	// SimulatedLatency retardo aplicado antes de validar cada mutación.
	SimulatedLatency time.Duration
	// StrictPersistence si es true un fallo al persistir aborta el commit y devuelve domain.ErrPersistence.
	// Por defecto la persistencia es un espejo best-effort: el fallo se registra y el cambio queda en memoria.
	StrictPersistence bool

	// Now y NewID permiten fijar reloj e identificadores en tests.
	Now   func() time.Time
	NewID func() string
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = func() string { return uuid.New().String() }
	}
	return o
}

// Writer sección crítica única para todas las mutaciones. Valida contra el estado actual,
// confirma las colecciones afectadas y solo entonces notifica a los suscriptores.
type Writer struct {
	mu sync.Mutex

	// view se toma en escritura solo mientras se intercambian las colecciones.
	view    sync.RWMutex
	kv      repository.KeyValueStore
	log     *logger.Logger
	metrics *metrics.Metrics
	latency time.Duration
	strict  bool
	now     func() time.Time
	newID   func() string
}

func newWriter(kv repository.KeyValueStore, opts Options) *Writer {
	return &Writer{
		kv:      kv,
		log:     opts.Logger.Named("store"),
		metrics: opts.Metrics,
		latency: opts.SimulatedLatency,
		strict:  opts.StrictPersistence,
		now:     opts.Now,
		newID:   opts.NewID,
	}
}

// Tx cambios preparados dentro de una ejecución de Writer.Run.
type Tx struct {
	changes []change
}

type change struct {
	store   string
	key     string
	count   int
	payload json.RawMessage
	prev    func() (json.RawMessage, error)
	swap    func() (publish func())
}

// stage prepara el reemplazo de la colección c por next. Nada es visible hasta el commit.
func stage[T any](tx *Tx, c *Collection[T], next []T) error {
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", c.name, err)
	}
	prev := c.cell.Get()
	tx.changes = append(tx.changes, change{
		store:   c.name,
		key:     c.key,
		count:   len(next),
		payload: payload,
		prev:    func() (json.RawMessage, error) { return json.Marshal(prev) },
		swap:    func() func() { return c.cell.Swap(next) },
	})
	return nil
}

// Run espera la latencia simulada, ejecuta fn bajo el lock de escritura y confirma lo preparado.
// Si fn devuelve error no se aplica nada. Los observadores se invocan con el lock tomado:
// no deben llamar a operaciones de escritura.
func (w *Writer) Run(ctx context.Context, op string, fn func(tx *Tx) error) error {
	if err := w.wait(ctx); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	tx := &Tx{}
	if err := fn(tx); err != nil {
		w.metrics.Rejection(op, domain.Code(err))
		return err
	}
	// Una vez validado el cambio ya no se puede cancelar.
	return w.commit(context.WithoutCancel(ctx), tx)
}

func (w *Writer) wait(ctx context.Context) error {
	if w.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(w.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (w *Writer) commit(ctx context.Context, tx *Tx) error {
	if len(tx.changes) == 0 {
		return nil
	}
	if w.strict {
		if err := w.persistAll(ctx, tx.changes); err != nil {
			return err
		}
	}

	publishers := make([]func(), 0, len(tx.changes))
	w.view.Lock()
	for _, ch := range tx.changes {
		publishers = append(publishers, ch.swap())
	}
	w.view.Unlock()

	if !w.strict {
		for _, ch := range tx.changes {
			if err := w.kv.Set(ctx, ch.key, ch.payload); err != nil {
				w.metrics.PersistenceFailure(ch.key)
				w.log.Warn().Err(err).Str("key", ch.key).Msg("no se pudo persistir; el cambio queda solo en memoria")
			}
		}
	}

	for _, ch := range tx.changes {
		w.metrics.Commit(ch.store)
		w.log.Debug().Str("store", ch.store).Int("count", ch.count).Msg("commit")
	}
	for _, publish := range publishers {
		publish()
	}
	return nil
}

// persistAll escribe todas las claves o ninguna: ante un fallo restaura las ya escritas.
func (w *Writer) persistAll(ctx context.Context, changes []change) error {
	for i, ch := range changes {
		if err := w.kv.Set(ctx, ch.key, ch.payload); err != nil {
			w.metrics.PersistenceFailure(ch.key)
			w.rollback(ctx, changes[:i])
			return fmt.Errorf("%w: %s: %v", domain.ErrPersistence, ch.key, err)
		}
	}
	return nil
}

func (w *Writer) rollback(ctx context.Context, written []change) {
	for _, ch := range written {
		prev, err := ch.prev()
		if err == nil {
			err = w.kv.Set(ctx, ch.key, prev)
		}
		if err != nil {
			w.log.Error().Err(err).Str("key", ch.key).Msg("no se pudo restaurar el valor persistido anterior")
		}
	}
}
