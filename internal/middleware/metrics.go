package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "minikatalog_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FollowOperations counts follow-graph mutations by operation and outcome.
	FollowOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "minikatalog_follow_operations_total",
		Help: "Total follow and unfollow operations by outcome",
	}, []string{"operation", "outcome"})

	// FeedQueries counts feed computations.
	FeedQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "minikatalog_feed_queries_total",
		Help: "Total number of feed queries served",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware registers the /metrics endpoint and returns the
// per-request metrics handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus, app *fiber.App) fiber.Handler {
	prom.RegisterAt(app, "/metrics")
	return prom.Middleware
}
