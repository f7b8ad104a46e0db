package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"littlemaestros/internal/domain"
)

type fakeSyncService struct {
	report *domain.SyncReport
	status *domain.SyncStatus
	probe  *domain.ProbeReport
	err    error
}

func (f *fakeSyncService) Run(ctx context.Context) (*domain.SyncReport, error) {
	return f.report, f.err
}

func (f *fakeSyncService) Status(ctx context.Context) (*domain.SyncStatus, error) {
	return f.status, f.err
}

func (f *fakeSyncService) Probe(ctx context.Context) (*domain.ProbeReport, error) {
	return f.probe, f.err
}

func newTestSyncController(svc domain.SyncService) *SyncController {
	return NewSyncController(slog.New(slog.DiscardHandler), svc)
}

func TestSyncReturnsRawReport(t *testing.T) {
	svc := &fakeSyncService{report: &domain.SyncReport{
		Success:   true,
		Synced:    2,
		Total:     2,
		Skipped:   1,
		Errors:    []string{"Failed to sync cls-3: connection reset"},
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := httptest.NewRecorder()
	newTestSyncController(svc).Sync(rec, httptest.NewRequest(http.MethodPost, "/api/admin/sync-mainstreet", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	// The report is the whole body, not wrapped in the usual data envelope.
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "data")
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["synced"])
	assert.Equal(t, float64(1), body["skipped"])
	assert.Len(t, body["errors"], 1)
}

func TestSyncZeroRowsReturnsDebug(t *testing.T) {
	svc := &fakeSyncService{err: &domain.SyncDiagnosticError{Debug: domain.SyncDebug{
		HasTable:   true,
		HTMLLength: 512,
	}}}

	rec := httptest.NewRecorder()
	newTestSyncController(svc).Sync(rec, httptest.NewRequest(http.MethodPost, "/api/admin/sync-mainstreet", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body SyncFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "no sessions found on mainstreet page", body.Error)
	require.NotNil(t, body.Debug)
	assert.True(t, body.Debug.HasTable)
	assert.Equal(t, 512, body.Debug.HTMLLength)
}

func TestSyncFetchFailure(t *testing.T) {
	svc := &fakeSyncService{err: errors.New("fetch mainstreet page: 503 Service Unavailable")}

	rec := httptest.NewRecorder()
	newTestSyncController(svc).Sync(rec, httptest.NewRequest(http.MethodPost, "/api/admin/sync-mainstreet", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body SyncFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "503")
	assert.Nil(t, body.Debug)
}

func TestSyncStatusEnveloped(t *testing.T) {
	last := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeSyncService{status: &domain.SyncStatus{LastSync: &last, HasSyncedData: true}}

	rec := httptest.NewRecorder()
	newTestSyncController(svc).Status(rec, httptest.NewRequest(http.MethodGet, "/api/sync-status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data domain.SyncStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.HasSyncedData)
	require.NotNil(t, body.Data.LastSync)
	assert.Equal(t, last, body.Data.LastSync.UTC())
}

func TestSyncDebugProbeFailure(t *testing.T) {
	svc := &fakeSyncService{err: errors.New("probe mainstreet page: connection refused")}

	rec := httptest.NewRecorder()
	newTestSyncController(svc).Debug(rec, httptest.NewRequest(http.MethodGet, "/api/admin/debug-mainstreet", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_gateway")
}

func TestSyncDebugProbeReport(t *testing.T) {
	svc := &fakeSyncService{probe: &domain.ProbeReport{
		Status:      200,
		ContentType: "text/html",
		HTMLSample:  "<html>",
		SyncDebug:   domain.SyncDebug{HasTable: true, RowMatchCount: 3},
	}}

	rec := httptest.NewRecorder()
	newTestSyncController(svc).Debug(rec, httptest.NewRequest(http.MethodGet, "/api/admin/debug-mainstreet", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data domain.ProbeReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 200, body.Data.Status)
	assert.True(t, body.Data.HasTable)
	assert.Equal(t, 3, body.Data.RowMatchCount)
}
