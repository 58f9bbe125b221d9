// Package metrics expone contadores Prometheus del registro de ventas y del
// adaptador de extracción. Un *SalesMetrics nil es válido y no registra nada.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SalesMetrics métricas del motor de ventas.
type SalesMetrics struct {
	recorded           *prometheus.CounterVec
	rejected           *prometheus.CounterVec
	extractions        *prometheus.CounterVec
	extractionDuration prometheus.Histogram
}

// NewSalesMetrics registra las métricas en el registerer indicado.
func NewSalesMetrics(reg prometheus.Registerer) *SalesMetrics {
	if reg == nil {
		return &SalesMetrics{}
	}
	recorded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_recorded_total",
		Help: "Ventas registradas en el libro.",
	}, []string{"source"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_rejected_total",
		Help: "Ventas rechazadas por motivo.",
	}, []string{"source", "reason"})
	extractions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "extraction_requests_total",
		Help: "Llamadas al adaptador de extracción de texto por resultado.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "extraction_duration_seconds",
		Help:    "Duración de las llamadas al adaptador de extracción.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(recorded, rejected, extractions, duration)
	return &SalesMetrics{
		recorded:           recorded,
		rejected:           rejected,
		extractions:        extractions,
		extractionDuration: duration,
	}
}

// IncRecorded cuenta una venta registrada.
func (m *SalesMetrics) IncRecorded(source string) {
	if m == nil || m.recorded == nil {
		return
	}
	m.recorded.WithLabelValues(normalizeLabel(source)).Inc()
}

// IncRejected cuenta una venta rechazada.
func (m *SalesMetrics) IncRejected(source, reason string) {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.WithLabelValues(normalizeLabel(source), normalizeLabel(reason)).Inc()
}

// ObserveExtraction registra el resultado y la duración de una llamada al adaptador.
func (m *SalesMetrics) ObserveExtraction(outcome string, d time.Duration) {
	if m == nil || m.extractions == nil {
		return
	}
	m.extractions.WithLabelValues(normalizeLabel(outcome)).Inc()
	m.extractionDuration.Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
