package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/cryptoadvisor/internal/api/handlers"
	"github.com/wonny/cryptoadvisor/internal/metrics"
	"github.com/wonny/cryptoadvisor/pkg/logger"
	"github.com/wonny/cryptoadvisor/pkg/redis"
)

// RouterConfig bundles what NewRouter wires together
type RouterConfig struct {
	Advisor        *handlers.AdvisorHandler
	Health         *handlers.HealthHandler
	Limiter        *redis.RateLimiter // nil disables rate limiting
	RatePerMinute  int
	MetricsEnabled bool
}

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(cfg RouterConfig, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", cfg.Health.Check).Methods("GET")

	if cfg.MetricsEnabled {
		metrics.Init()
		r.Handle("/metrics", metrics.Handler()).Methods("GET")
	}

	api := r.PathPrefix("/api").Subrouter()

	// Recommendation endpoints
	api.HandleFunc("/recommendations", cfg.Advisor.GetRecommendations).Methods("GET")
	api.HandleFunc("/ask", cfg.Advisor.Ask).Methods("POST")

	// Catalog endpoints
	api.HandleFunc("/assets", cfg.Advisor.GetAssets).Methods("GET")
	api.HandleFunc("/assets/{symbol}", cfg.Advisor.GetAsset).Methods("GET")
	api.HandleFunc("/assets/{symbol}/analysis", cfg.Advisor.GetAnalysis).Methods("GET")
	api.HandleFunc("/catalog/views/{view}", cfg.Advisor.GetView).Methods("GET")

	// Market endpoints
	api.HandleFunc("/market/summary", cfg.Advisor.GetMarketSummary).Methods("GET")
	api.HandleFunc("/market/sustainability", cfg.Advisor.GetSustainability).Methods("GET")

	if cfg.Limiter != nil && cfg.RatePerMinute > 0 {
		api.Use(rateLimitMiddleware(cfg.Limiter, cfg.RatePerMinute, log))
	}

	// Apply middleware
	r.Use(requestIDMiddleware())
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}
