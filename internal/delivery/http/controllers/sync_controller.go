package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "littlemaestros/internal/delivery/http/helpers"
	"littlemaestros/internal/domain"
)

// SyncFailureResponse is the unenveloped body returned when a sync run fails.
// Debug is present only for the zero-rows diagnostic path.
type SyncFailureResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Debug   *domain.SyncDebug `json:"debug,omitempty"`
}

type SyncController struct {
	Logger  *slog.Logger
	Service domain.SyncService
}

func NewSyncController(logger *slog.Logger, svc domain.SyncService) *SyncController {
	return &SyncController{
		Logger:  logger,
		Service: svc,
	}
}

// Sync godoc
// @Summary Sync sessions from the MainStreet booking calendar
// @Description Fetches the external booking page, parses its class table, and upserts every row. The report is returned unenveloped as the admin dashboard expects it.
// @Tags sync
// @Produce json
// @Success 200 {object} domain.SyncReport
// @Failure 400 {object} controllers.SyncFailureResponse "zero parseable rows, debug attached"
// @Failure 500 {object} controllers.SyncFailureResponse "upstream fetch failure"
// @Router /api/admin/sync-mainstreet [post]
func (c *SyncController) Sync(w http.ResponseWriter, r *http.Request) {
	report, err := c.Service.Run(r.Context())
	if err != nil {
		var diag *domain.SyncDiagnosticError
		if errors.As(err, &diag) {
			c.Logger.WarnContext(r.Context(), "sync found no sessions", "rowMatchCount", diag.Debug.RowMatchCount, "htmlLength", diag.Debug.HTMLLength)
			h.WriteJSONRaw(w, http.StatusBadRequest, SyncFailureResponse{
				Success: false,
				Error:   err.Error(),
				Debug:   &diag.Debug,
			})
			return
		}
		c.Logger.ErrorContext(r.Context(), "sync failed", "err", err)
		h.WriteJSONRaw(w, http.StatusInternalServerError, SyncFailureResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	h.WriteJSONRaw(w, http.StatusOK, report)
}

// Status godoc
// @Summary Report when sync-sourced data was last written
// @Tags sync
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {lastSync, hasSyncedData}"
// @Router /api/sync-status [get]
func (c *SyncController) Status(w http.ResponseWriter, r *http.Request) {
	status, err := c.Service.Status(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, status)
}

// Debug godoc
// @Summary Fetch diagnostics for the MainStreet page
// @Description Fetches the booking page without writing anything and reports upstream status, content type, marker hits, and leading HTML.
// @Tags sync
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the probe report"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /api/admin/debug-mainstreet [get]
func (c *SyncController) Debug(w http.ResponseWriter, r *http.Request) {
	probe, err := c.Service.Probe(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "probe failed", "err", err)
		h.WriteJSONError(w, http.StatusBadGateway, h.ErrCodeBadGateway, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, probe)
}
