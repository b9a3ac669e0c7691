package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/pkg/database"
)

// DBChecker reports database health; *database.DB satisfies it
type DBChecker interface {
	HealthCheck(ctx context.Context) database.HealthStatus
}

// HealthHandler reports service, catalog and database status
type HealthHandler struct {
	store        *catalog.Store
	db           DBChecker
	cacheEnabled bool
	service      string
}

// NewHealthHandler creates a health handler; db may be nil when the catalog is not DB-backed
func NewHealthHandler(store *catalog.Store, db DBChecker, cacheEnabled bool) *HealthHandler {
	return &HealthHandler{
		store:        store,
		db:           db,
		cacheEnabled: cacheEnabled,
		service:      "cryptoadvisor-api",
	}
}

// HealthResponse is the /health body
type HealthResponse struct {
	Status   string                 `json:"status"`
	Service  string                 `json:"service"`
	Catalog  CatalogHealth          `json:"catalog"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Cache    bool                   `json:"cache_enabled"`
}

// CatalogHealth describes the snapshot being served
type CatalogHealth struct {
	Version  string    `json:"version"`
	Assets   int       `json:"assets"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Check returns server health status
// GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()
	resp := HealthResponse{
		Status:  "ok",
		Service: h.service,
		Catalog: CatalogHealth{
			Version:  snap.Version(),
			Assets:   snap.Len(),
			LoadedAt: snap.LoadedAt(),
		},
		Cache: h.cacheEnabled,
	}

	status := http.StatusOK
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		dbStatus := h.db.HealthCheck(ctx)
		resp.Database = &dbStatus
		if !dbStatus.Healthy {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, status, resp)
}
