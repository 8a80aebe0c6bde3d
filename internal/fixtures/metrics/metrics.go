package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Kinds of generated code.
const (
	KindIBAN       = "iban"
	KindPersonalID = "personal_id"
)

// Outcomes of a single draw.
const (
	OutcomeGenerated = "generated"
	OutcomeSkipped   = "skipped"
)

// Metrics provides observability for fixture generation.
// All methods are safe on a nil receiver.
type Metrics struct {
	CodesGenerated *prometheus.CounterVec
	BatchDuration  *prometheus.HistogramVec
}

// New registers the fixture metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CodesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eutestdata_codes_total",
			Help: "Generated codes by kind, country and outcome",
		}, []string{"kind", "country", "outcome"}),
		BatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eutestdata_batch_duration_seconds",
			Help:    "Duration of one generation batch",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"kind"}),
	}
}

// IncrementCode records one draw.
func (m *Metrics) IncrementCode(kind, country, outcome string) {
	if m == nil {
		return
	}
	m.CodesGenerated.WithLabelValues(kind, country, outcome).Inc()
}

// ObserveBatch records the duration of a batch.
// Call with time.Now() at the start of the batch.
func (m *Metrics) ObserveBatch(kind string, start time.Time) {
	if m == nil {
		return
	}
	m.BatchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
