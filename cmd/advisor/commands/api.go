package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/cryptoadvisor/internal/api"
	"github.com/wonny/cryptoadvisor/internal/api/handlers"
	"github.com/wonny/cryptoadvisor/internal/metrics"
	"github.com/wonny/cryptoadvisor/internal/scheduler"
	"github.com/wonny/cryptoadvisor/internal/scheduler/jobs"
	"github.com/wonny/cryptoadvisor/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 카탈로그 주기적 갱신 (CATALOG_REFRESH_SCHEDULE 설정 시)
- Redis 응답 캐시 및 레이트 리밋 (REDIS_ENABLED=true 시, 미설정 시 로컬 리밋)

Endpoints:
  GET  /health                           - Health check
  GET  /metrics                          - Prometheus metrics
  GET  /api/recommendations?tolerance=   - 추천 및 비중
  GET  /api/assets                       - 카탈로그 목록
  GET  /api/assets/{symbol}              - 자산 레코드
  GET  /api/assets/{symbol}/analysis     - 자산 분석
  GET  /api/catalog/views/{view}         - sustainable | low-risk
  GET  /api/market/summary               - 시장 요약
  GET  /api/market/sustainability        - 지속가능성 리포트
  POST /api/ask                          - 자연어 질문

Example:
  go run ./cmd/advisor api
  go run ./cmd/advisor api --port 8080`,
	Args: cobra.NoArgs,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default: PORT env)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Config, logger, catalog, advisor
	a, err := bootstrap(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	log := a.log
	if apiPort != "" {
		cfg.Port = apiPort
	}

	if cfg.MetricsEnabled {
		metrics.Init()
	}
	metrics.RecordCatalogRefresh(a.source.Name(), jobs.RefreshSuccess, a.store.Current().Len())

	// 2. Redis (optional)
	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	cache := redis.NewCache(rdb, "cryptoadvisor")
	limiter := redis.NewRateLimiter(rdb, "cryptoadvisor")

	// 3. Catalog refresh
	sched := scheduler.New(log)
	if cfg.Catalog.RefreshSchedule != "" {
		job := jobs.NewCatalogRefreshJob(a.source, a.store, cfg.Catalog.RefreshSchedule, log)
		if err := sched.AddJob(job); err != nil {
			return fmt.Errorf("schedule catalog refresh: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// 4. Handlers and router
	advisorHandler := handlers.NewAdvisorHandler(a.advisor, a.store, cache, cfg.API.CacheTTL, log)

	var dbCheck handlers.DBChecker
	if a.db != nil {
		dbCheck = a.db
	}
	healthHandler := handlers.NewHealthHandler(a.store, dbCheck, rdb.Enabled())

	router := api.NewRouter(api.RouterConfig{
		Advisor:        advisorHandler,
		Health:         healthHandler,
		Limiter:        limiter,
		RatePerMinute:  cfg.API.RateLimitPerMinute,
		MetricsEnabled: cfg.MetricsEnabled,
	}, log)

	// 5. Serve until interrupted
	server := api.New(cfg, log, router)

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Server running on http://localhost:%s (catalog %s, %d assets)\n",
		cfg.Port, a.store.Current().Version(), a.store.Current().Len())
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	if err := server.Run(ctx, 30*time.Second); err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}
