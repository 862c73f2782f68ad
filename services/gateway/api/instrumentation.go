package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

// instrumentation holds the request collectors of a single server. Each server owns its registry so several
// servers can live in the same process (tests).
type instrumentation struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	metricFailures  *prometheus.CounterVec
	messagesStored  *prometheus.CounterVec
}

func newInstrumentation() *instrumentation {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &instrumentation{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		metricFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_metric_failures_total",
			Help: "Total number of metric evaluations that failed",
		}, []string{"metric"}),
		messagesStored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_messages_stored_total",
			Help: "Total number of messages appended to the local log",
		}, []string{"code"}),
	}
}

func (ins *instrumentation) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if len(route) == 0 {
			route = unmatchedRoute
		}

		ins.requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		ins.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (ins *instrumentation) handler() http.Handler {
	return promhttp.HandlerFor(ins.registry, promhttp.HandlerOpts{})
}
