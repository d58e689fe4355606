// Package metrics expone métricas Prometheus de las peticiones HTTP.
// Counter de peticiones + histograma de duración, etiquetados por servicio,
// método, ruta y status.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"service", "method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

// HTTPMetrics colector de métricas HTTP para un servicio.
type HTTPMetrics struct {
	ServiceName string
}

// NewHTTPMetrics crea el colector y registra los vectores en el registry global.
// MustRegister entra en pánico ante doble registro: construir una sola vez por proceso.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	prometheus.MustRegister(requestCounter, requestDuration)
	return &HTTPMetrics{ServiceName: serviceName}
}

// Middleware instrumenta cada petición. Usa la ruta registrada (no la URL cruda)
// para mantener baja la cardinalidad de las etiquetas.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		method := c.Method()

		requestCounter.WithLabelValues(m.ServiceName, method, path, status).Inc()
		requestDuration.WithLabelValues(m.ServiceName, method, path, status).
			Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler expone el endpoint /metrics (promhttp adaptado a Fiber).
func (m *HTTPMetrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
