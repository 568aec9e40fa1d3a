package observability

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "libnoise"

var (
	registerOnce sync.Once

	handlesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "handle",
			Name:      "created_total",
			Help:      "Seed handles allocated.",
		},
	)
	handlesDestroyed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "handle",
			Name:      "destroyed_total",
			Help:      "Seed handles freed.",
		},
	)
	handlesLive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "handle",
			Name:      "live",
			Help:      "Seed handles currently owned by callers.",
		},
	)
	handleViolations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "handle",
			Name:      "violations_total",
			Help:      "Invalid handles caught by the debug guard.",
		},
		[]string{"op"},
	)
	evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "eval",
			Name:      "samples_total",
			Help:      "Samples evaluated by tooling.",
		},
		[]string{"symbol", "dims"},
	)
	evaluationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "eval",
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one evaluated batch.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"symbol", "dims"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			handlesCreated, handlesDestroyed, handlesLive, handleViolations,
			evaluations, evaluationDuration,
		)
	})
}

func RecordHandleCreated() {
	RegisterMetrics()
	handlesCreated.Inc()
	handlesLive.Inc()
}

func RecordHandleDestroyed() {
	RegisterMetrics()
	handlesDestroyed.Inc()
	handlesLive.Dec()
}

func RecordHandleViolation(op string) {
	RegisterMetrics()
	handleViolations.WithLabelValues(op).Inc()
}

func RecordEvaluation(symbol string, dims, samples int, duration time.Duration) {
	RegisterMetrics()
	dimsLabel := strconv.Itoa(dims)
	evaluations.WithLabelValues(symbol, dimsLabel).Add(float64(samples))
	evaluationDuration.WithLabelValues(symbol, dimsLabel).Observe(duration.Seconds())
}

// Snapshot sums every libnoise metric family into one value per family:
// counter and gauge values, histogram sample counts.
func Snapshot() (map[string]float64, error) {
	RegisterMetrics()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, namespace+"_") {
			continue
		}
		total := 0.0
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		out[name] = total
	}
	return out, nil
}
