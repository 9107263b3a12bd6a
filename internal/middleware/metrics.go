package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "friendly_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

// LikeConflicts counts like requests rejected because the like already existed.
var LikeConflicts = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "friendly_like_conflicts_total",
		Help: "Total number of duplicate like attempts",
	},
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
