package jobs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/internal/metrics"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

type stubSource struct {
	name string
	snap *catalog.Snapshot
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Load(ctx context.Context) (*catalog.Snapshot, error) {
	return s.snap, s.err
}

func newStore(t *testing.T) *catalog.Store {
	t.Helper()
	snap, err := catalog.Reference()
	require.NoError(t, err)
	store, err := catalog.NewStore(snap)
	require.NoError(t, err)
	return store
}

func versioned(t *testing.T, version string) *catalog.Snapshot {
	t.Helper()
	ref, err := catalog.Reference()
	require.NoError(t, err)
	snap, err := catalog.NewSnapshot(ref.Assets()[:4], version)
	require.NoError(t, err)
	return snap
}

func TestCatalogRefreshJob_SwapsNewVersion(t *testing.T) {
	store := newStore(t)
	next := versioned(t, "test-v2")
	src := &stubSource{name: "swap-test", snap: next}

	job := NewCatalogRefreshJob(src, store, "", logger.Nop())
	assert.Equal(t, "catalog_refresh", job.Name())
	assert.Equal(t, DefaultRefreshSchedule, job.Schedule())

	require.NoError(t, job.Run(context.Background()))

	assert.Same(t, next, store.Current())
	assert.Equal(t, 4, store.Current().Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogRefreshes.WithLabelValues("swap-test", RefreshSuccess)))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.CatalogAssets))
}

func TestCatalogRefreshJob_SameVersionIsNoop(t *testing.T) {
	store := newStore(t)
	before := store.Current()

	same, err := catalog.Reference()
	require.NoError(t, err)
	src := &stubSource{name: "same-test", snap: same}

	job := NewCatalogRefreshJob(src, store, "0 0 * * * *", logger.Nop())
	assert.Equal(t, "0 0 * * * *", job.Schedule())

	require.NoError(t, job.Run(context.Background()))
	assert.Same(t, before, store.Current())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogRefreshes.WithLabelValues("same-test", RefreshUnchanged)))
}

func TestCatalogRefreshJob_LoadErrorKeepsCurrent(t *testing.T) {
	store := newStore(t)
	before := store.Current()

	boom := errors.New("source offline")
	src := &stubSource{name: "error-test", err: boom}

	err := NewCatalogRefreshJob(src, store, "", logger.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Same(t, before, store.Current())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogRefreshes.WithLabelValues("error-test", RefreshError)))
}

func TestCatalogRefreshJob_InstallsEditedFileWithSameDeclaredVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, catalog.ReferenceYAML(), 0o644))

	src := catalog.FileSource{Path: path}
	initial, err := src.Load(context.Background())
	require.NoError(t, err)
	store, err := catalog.NewStore(initial)
	require.NoError(t, err)

	// same "version: reference-v1" header, different content
	edited := bytes.Replace(catalog.ReferenceYAML(), []byte("price_change_30d: 15.8"), []byte("price_change_30d: -40.0"), 1)
	require.NoError(t, os.WriteFile(path, edited, 0o644))

	require.NoError(t, NewCatalogRefreshJob(src, store, "", logger.Nop()).Run(context.Background()))

	assert.NotSame(t, initial, store.Current())
	assert.NotEqual(t, initial.Version(), store.Current().Version())

	btc, ok := store.Current().Get("BTC")
	require.True(t, ok)
	assert.Equal(t, -40.0, btc.PriceChange30d)
}
