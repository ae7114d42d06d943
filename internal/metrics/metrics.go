package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payroll_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payroll_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payroll_login_attempts_total",
		Help: "Login attempts by result",
	}, []string{"result"})

	credentialMigrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payroll_credential_migrations_total",
		Help: "Legacy plaintext passwords rewritten as hashes on login",
	})
)

// ObserveHTTPRequest записывает метрики HTTP запроса
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveLogin учитывает попытку входа: success, legacy, invalid, error
func ObserveLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

// IncCredentialMigrations учитывает перехеширование устаревшего пароля
func IncCredentialMigrations() {
	credentialMigrations.Inc()
}
