package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Conversions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "datumsync_conversions_total",
		Help: "Completed conversion passes.",
	})
	Points = promauto.NewCounter(prometheus.CounterOpts{
		Name: "datumsync_points_total",
		Help: "Coordinate triples converted.",
	})
	ZWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datumsync_z_warnings_total",
		Help: "Elevation conversion advisories by kind.",
	}, []string{"kind"})
	TransformErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "datumsync_transform_errors_total",
		Help: "Failed transform invocations.",
	})
)

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
