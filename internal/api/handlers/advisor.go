package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/cryptoadvisor/internal/advisor"
	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/internal/intent"
	"github.com/wonny/cryptoadvisor/internal/metrics"
	"github.com/wonny/cryptoadvisor/internal/profile"
	"github.com/wonny/cryptoadvisor/internal/report"
	"github.com/wonny/cryptoadvisor/pkg/logger"
	"github.com/wonny/cryptoadvisor/pkg/redis"
)

// Catalog views served under /api/catalog/views/{view}
const (
	ViewSustainable = "sustainable"
	ViewLowRisk     = "low-risk"
)

// AdvisorHandler serves recommendations, analyses and catalog reports
// ⭐ SSOT: 추천 API 핸들러는 이 구조체에서만
type AdvisorHandler struct {
	advisor  *advisor.Advisor
	store    *catalog.Store
	cache    *redis.Cache
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewAdvisorHandler creates a new advisor handler; cache may be nil
func NewAdvisorHandler(adv *advisor.Advisor, store *catalog.Store, cache *redis.Cache, cacheTTL time.Duration, log *logger.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisor:  adv,
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

// cached serves key from the response cache, rendering with fn on a miss
func (h *AdvisorHandler) cached(ctx context.Context, key string, fn func() ([]byte, error)) ([]byte, error) {
	if !h.cache.Enabled() || key == "" {
		return fn()
	}

	body, hit, err := h.cache.GetOrSet(ctx, key, h.cacheTTL, fn)
	if err != nil {
		return nil, err
	}
	if hit {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}
	return body, nil
}

// GetRecommendations returns the ranked assets and allocation for a tolerance
// GET /api/recommendations?tolerance=low|medium|high&format=json|markdown|html
func (h *AdvisorHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid format (valid: json, markdown, html)")
		return
	}

	tag := r.URL.Query().Get("tolerance")
	if tag == "" {
		tag = string(contracts.ToleranceMedium)
	}

	// unknown tags share the default tier's cache entry
	tol, known := contracts.ParseTolerance(tag)
	if !known {
		tol = profile.DefaultTolerance
	}
	key := redis.RecommendationKey(h.store.Current().Version(), string(tol), string(format))

	body, err := h.cached(r.Context(), key, func() ([]byte, error) {
		rec, err := h.advisor.Recommend(tag)
		if err != nil {
			return nil, err
		}
		return encode(format, rec, report.Recommendation(rec))
	})
	if errors.Is(err, advisor.ErrNoSuitableAssets) {
		respondError(w, http.StatusUnprocessableEntity, strings.TrimSpace(report.NoSuitableAssets(tol)))
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("tolerance", tag).Error("Failed to build recommendation")
		respondError(w, http.StatusInternalServerError, "Failed to build recommendation")
		return
	}

	respondBody(w, http.StatusOK, format, body)
}

// GetAssets lists the whole catalog in insertion order
// GET /api/assets?format=json|markdown|html
func (h *AdvisorHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid format (valid: json, markdown, html)")
		return
	}

	snap := h.store.Current()
	h.respondAssets(w, format, "Cryptocurrency Catalog", snap.Assets())
}

// GetAsset returns one catalog record
// GET /api/assets/{symbol}
func (h *AdvisorHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	asset, ok := h.store.Current().Get(symbol)
	if !ok {
		respondError(w, http.StatusNotFound, strings.TrimSpace(report.UnknownAsset(symbol)))
		return
	}

	respondJSON(w, http.StatusOK, asset)
}

// GetAnalysis returns the single-asset report scored as medium tolerance
// GET /api/assets/{symbol}/analysis?format=json|markdown|html
func (h *AdvisorHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid format (valid: json, markdown, html)")
		return
	}

	symbol := mux.Vars(r)["symbol"]
	snap := h.store.Current()

	key := ""
	if _, known := snap.Get(symbol); known {
		key = redis.AnalysisKey(snap.Version(), contracts.NormalizeSymbol(symbol), string(format))
	}

	body, err := h.cached(r.Context(), key, func() ([]byte, error) {
		an, err := h.advisor.Analyze(symbol)
		if err != nil {
			return nil, err
		}
		return encode(format, an, report.Analysis(an))
	})
	if errors.Is(err, advisor.ErrUnknownAsset) {
		respondError(w, http.StatusNotFound, strings.TrimSpace(report.UnknownAsset(symbol)))
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("symbol", symbol).Error("Failed to analyze asset")
		respondError(w, http.StatusInternalServerError, "Failed to analyze asset")
		return
	}

	respondBody(w, http.StatusOK, format, body)
}

// GetView returns a derived catalog view
// GET /api/catalog/views/{view}  (sustainable | low-risk)
func (h *AdvisorHandler) GetView(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid format (valid: json, markdown, html)")
		return
	}

	snap := h.store.Current()

	switch view := mux.Vars(r)["view"]; view {
	case ViewSustainable:
		h.respondAssets(w, format, "Sustainable Assets", snap.Sustainable())
	case ViewLowRisk:
		h.respondAssets(w, format, "Low-Risk Assets", snap.LowRisk())
	default:
		respondError(w, http.StatusNotFound, "Unknown view (valid: sustainable, low-risk)")
	}
}

// GetMarketSummary returns top performers, cap tiers and the sustainability trend
// GET /api/market/summary?format=json|markdown|html
func (h *AdvisorHandler) GetMarketSummary(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid format (valid: json, markdown, html)")
		return
	}

	key := redis.MarketKey(h.store.Current().Version(), "summary", string(format))
	body, err := h.cached(r.Context(), key, func() ([]byte, error) {
		sum := h.advisor.MarketSummary()
		return encode(format, sum, report.Market(sum))
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to build market summary")
		respondError(w, http.StatusInternalServerError, "Failed to build market summary")
		return
	}

	respondBody(w, http.StatusOK, format, body)
}

// GetSustainability returns sustainable assets ordered by score
// GET /api/market/sustainability?format=json|markdown|html
func (h *AdvisorHandler) GetSustainability(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid format (valid: json, markdown, html)")
		return
	}

	key := redis.MarketKey(h.store.Current().Version(), "sustainability", string(format))
	body, err := h.cached(r.Context(), key, func() ([]byte, error) {
		entries := h.advisor.SustainabilityReport()
		return encode(format, entries, report.Sustainability(entries))
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to build sustainability report")
		respondError(w, http.StatusInternalServerError, "Failed to build sustainability report")
		return
	}

	respondBody(w, http.StatusOK, format, body)
}

// AskRequest is the body of POST /api/ask
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse pairs the routed intent with the rendered answer
type AskResponse struct {
	Intent   intent.Intent `json:"intent"`
	Markdown string        `json:"markdown"`
}

// Ask routes a free-text question and answers it
// POST /api/ask?format=json|markdown|html  {"question": "..."}
func (h *AdvisorHandler) Ask(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid format (valid: json, markdown, html)")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	in := intent.Route(req.Question)
	md := intent.Answer(h.advisor, in)

	h.logger.WithFields(map[string]interface{}{
		"kind":      in.Kind,
		"tolerance": in.Tolerance,
		"symbol":    in.Symbol,
	}).Debug("Question routed")

	body, err := encode(format, AskResponse{Intent: in, Markdown: md}, md)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render answer")
		respondError(w, http.StatusInternalServerError, "Failed to render answer")
		return
	}

	respondBody(w, http.StatusOK, format, body)
}

func (h *AdvisorHandler) respondAssets(w http.ResponseWriter, format report.Format, title string, assets []contracts.AssetRecord) {
	body, err := encode(format, assets, report.AssetList(title, assets))
	if err != nil {
		h.logger.WithError(err).Error("Failed to render asset list")
		respondError(w, http.StatusInternalServerError, "Failed to render asset list")
		return
	}
	respondBody(w, http.StatusOK, format, body)
}
