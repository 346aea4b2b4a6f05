package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serverMetrics holds the Prometheus metrics for the preview server.
type serverMetrics struct {
	pagesRendered  *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	bytesWritten   prometheus.Counter
}

// newServerMetrics registers the server metrics with the given
// registry. Each server owns its registry, so repeated construction
// in tests never collides.
func newServerMetrics(registry prometheus.Registerer, hub *ReloadHub) *serverMetrics {
	factory := promauto.With(registry)

	m := &serverMetrics{
		pagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "htmlgen",
			Name:      "pages_rendered_total",
			Help:      "Total number of pages rendered, by path and status",
		}, []string{"path", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "htmlgen",
			Name:      "render_duration_seconds",
			Help:      "Page render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),

		bytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "htmlgen",
			Name:      "response_bytes_total",
			Help:      "Total bytes of rendered HTML written to clients",
		}),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "htmlgen",
		Name:      "reload_clients",
		Help:      "Number of connected live-reload clients",
	}, func() float64 {
		return float64(hub.ClientCount())
	})

	return m
}
