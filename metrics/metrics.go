package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus metrics of the service. A nil *Collector
// is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	DatasetLoads   *prometheus.CounterVec
	DatasetRecords *prometheus.GaugeVec
	Aggregations   *prometheus.CounterVec
}

// NewCollector creates a collector on its own registry.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DatasetLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_loads_total",
				Help:      "Dataset fetches by dataset and result",
			},
			[]string{"dataset", "result"},
		),
		DatasetRecords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_records",
				Help:      "Number of records in the loaded datasets",
			},
			[]string{"dataset"},
		),
		Aggregations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregations_total",
				Help:      "Country table aggregations by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.DatasetLoads,
		c.DatasetRecords,
		c.Aggregations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() fiber.Handler {
	if c == nil {
		return func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusNotFound) }
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}

// Middleware records request counts and durations per matched route.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if c == nil {
			return ctx.Next()
		}
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		route := ctx.Route().Path
		c.HTTPRequests.WithLabelValues(ctx.Method(), route, strconv.Itoa(status)).Inc()
		c.HTTPDuration.WithLabelValues(ctx.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func (c *Collector) ObserveLoad(dataset string, err error) {
	if c == nil {
		return
	}
	c.DatasetLoads.WithLabelValues(dataset, result(err)).Inc()
}

func (c *Collector) SetRecords(dataset string, n int) {
	if c == nil {
		return
	}
	c.DatasetRecords.WithLabelValues(dataset).Set(float64(n))
}

func (c *Collector) ObserveAggregation(err error) {
	if c == nil {
		return
	}
	c.Aggregations.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
