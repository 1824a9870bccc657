package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contadores de la capa de datos sobre un registro propio.
// Todos los métodos aceptan receptor nil (métricas desactivadas).
type Metrics struct {
	registry     *prometheus.Registry
	commits      *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	persistFails *prometheus.CounterVec
	unitsSold    prometheus.Counter
}

// New registra los contadores bajo el namespace indicado.
func New(namespace string) *Metrics {
	r := prometheus.NewRegistry()

	commits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "store_commits_total",
		Help: "Commits confirmados por store.",
	}, []string{"store"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "store_rejections_total",
		Help: "Operaciones rechazadas por regla de negocio.",
	}, []string{"store", "code"})
	persistFails := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "persistence_failures_total",
		Help: "Escrituras fallidas al almacenamiento clave/valor.",
	}, []string{"key"})
	unitsSold := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "units_sold_total",
		Help: "Unidades vendidas.",
	})
	r.MustRegister(commits, rejections, persistFails, unitsSold)

	return &Metrics{
		registry:     r,
		commits:      commits,
		rejections:   rejections,
		persistFails: persistFails,
		unitsSold:    unitsSold,
	}
}

// Registry expone el registro para quien quiera publicarlo o inspeccionarlo.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Commit(store string) {
	if m == nil {
		return
	}
	m.commits.WithLabelValues(store).Inc()
}

func (m *Metrics) Rejection(store, code string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(store, code).Inc()
}

func (m *Metrics) PersistenceFailure(key string) {
	if m == nil {
		return
	}
	m.persistFails.WithLabelValues(key).Inc()
}

func (m *Metrics) UnitsSold(n int) {
	if m == nil {
		return
	}
	m.unitsSold.Add(float64(n))
}
