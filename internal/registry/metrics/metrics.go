package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts registry operations. Failures carry the operation and a
// coarse reason label so dashboards can separate caller mistakes from
// infrastructure trouble.
type Metrics struct {
	OperationsTotal *prometheus.CounterVec
	FailuresTotal   *prometheus.CounterVec
	NamesRegistered prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		OperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nomen_registry_operations_total",
			Help: "Total number of registry operations that succeeded",
		}, []string{"operation"}),
		FailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nomen_registry_failures_total",
			Help: "Total number of registry operations that failed",
		}, []string{"operation", "reason"}),
		NamesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nomen_registry_names_registered_total",
			Help: "Total number of names registered",
		}),
	}
}

func (m *Metrics) IncrementOperation(operation string) {
	m.OperationsTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementFailure(operation, reason string) {
	m.FailuresTotal.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) IncrementNamesRegistered() {
	m.NamesRegistered.Inc()
}
