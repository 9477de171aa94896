package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terraincognita07/babybloom/internal/services"
)

type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	contentRecords  *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		contentRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "babybloom_content_records",
				Help: "Number of content records served, by kind",
			},
			[]string{"kind"},
		),
	}
}

// Middleware records every request under its route template, so
// /pregnancy/:slug is one series rather than one per week.
func (metrics *Metrics) Middleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}

	path := c.Route().Path
	if status == fiber.StatusNotFound {
		path = "not_found"
	}
	method := c.Method()

	metrics.requestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	metrics.requestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	return err
}

func (metrics *Metrics) ObserveCatalog(catalog *services.Catalog, routes services.RouteTable) {
	metrics.contentRecords.WithLabelValues("weeks").Set(float64(len(catalog.Weeks())))
	metrics.contentRecords.WithLabelValues("symptoms").Set(float64(len(catalog.Symptoms())))
	metrics.contentRecords.WithLabelValues("mappings").Set(float64(len(catalog.Mappings())))
	metrics.contentRecords.WithLabelValues("routes").Set(float64(routes.Len()))
}

func (metrics *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{}))
}
