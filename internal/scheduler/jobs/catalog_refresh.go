package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/internal/metrics"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

// DefaultRefreshSchedule reloads the catalog every 15 minutes
const DefaultRefreshSchedule = "0 */15 * * * *"

// Refresh outcomes reported to metrics
const (
	RefreshSuccess   = "success"
	RefreshUnchanged = "unchanged"
	RefreshError     = "error"
)

// CatalogRefreshJob reloads the catalog from its source and swaps it into the store
// ⭐ SSOT: 카탈로그 교체는 이 작업에서만
type CatalogRefreshJob struct {
	source   catalog.Source
	store    *catalog.Store
	schedule string
	logger   *logger.Logger
}

// NewCatalogRefreshJob creates a new catalog refresh job; an empty schedule uses DefaultRefreshSchedule
func NewCatalogRefreshJob(source catalog.Source, store *catalog.Store, schedule string, log *logger.Logger) *CatalogRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}
	return &CatalogRefreshJob{
		source:   source,
		store:    store,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *CatalogRefreshJob) Name() string {
	return "catalog_refresh"
}

// Schedule returns the cron schedule
func (j *CatalogRefreshJob) Schedule() string {
	return j.schedule
}

// Run loads a fresh snapshot and installs it when its version differs.
// A failed load leaves the current snapshot in place.
func (j *CatalogRefreshJob) Run(ctx context.Context) error {
	start := time.Now()

	next, err := j.source.Load(ctx)
	if err != nil {
		metrics.RecordCatalogRefresh(j.source.Name(), RefreshError, 0)
		return fmt.Errorf("load catalog from %s: %w", j.source.Name(), err)
	}

	current := j.store.Current()
	if current.Version() == next.Version() {
		metrics.RecordCatalogRefresh(j.source.Name(), RefreshUnchanged, next.Len())
		j.logger.WithFields(map[string]interface{}{
			"source":  j.source.Name(),
			"version": next.Version(),
		}).Debug("Catalog unchanged")
		return nil
	}

	previous, err := j.store.Replace(next)
	if err != nil {
		metrics.RecordCatalogRefresh(j.source.Name(), RefreshError, 0)
		return err
	}
	metrics.RecordCatalogRefresh(j.source.Name(), RefreshSuccess, next.Len())

	j.logger.WithFields(map[string]interface{}{
		"source":      j.source.Name(),
		"old_version": previous.Version(),
		"new_version": next.Version(),
		"assets":      next.Len(),
		"duration":    time.Since(start),
	}).Info("Catalog refreshed")

	return nil
}
