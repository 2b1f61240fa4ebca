// Package http contains the chi HTTP handlers for the dashboard API.
package http

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "callpulse/internal/errors"
	custommw "callpulse/internal/middleware"
	"callpulse/pkg/contracts/domain"
)

// ReportHandler handles call-report uploads, analysis and exports.
type ReportHandler struct {
	service      ReportServiceInterface
	exporter     ExporterInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service ReportServiceInterface, exporter ExporterInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		exporter:     exporter,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the report routes with proper Chi patterns.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/template", h.GetTemplate)

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Post("/analyze", h.Analyze)
	})

	// Export routes stream CSV, so no JSON content type here.
	r.Post("/export/table", h.ExportTable)
	r.Post("/export/summary", h.ExportSummary)

	return r
}

// Analyze handles POST /api/reports/analyze. One upload triggers one
// synchronous pipeline run; nothing outlives the response.
func (h *ReportHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	reqID := custommw.GetReqID(r.Context())

	file, filename, ok := h.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	h.logger.InfoContext(r.Context(), "analyzing uploaded report",
		slog.String("request_id", reqID),
		slog.String("filename", filename))

	analysis, err := h.service.Analyze(r.Context(), filename, file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, struct {
		Status string `json:"status"`
		*domain.Analysis
	}{Status: "success", Analysis: analysis})
}

// ExportTable handles POST /api/reports/export/table and streams the
// normalized table back as a CSV attachment.
func (h *ReportHandler) ExportTable(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := h.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	table, err := h.service.NormalizedTable(r.Context(), filename, file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	writeAttachmentHeaders(w, exportName(filename, "processed"))
	if err := h.exporter.WriteTable(w, table); err != nil {
		// Headers are already out; all we can do is log.
		h.logger.ErrorContext(r.Context(), "failed to stream table export",
			slog.String("error", err.Error()),
			slog.String("filename", filename))
	}
}

// ExportSummary handles POST /api/reports/export/summary and streams the
// per-column descriptive statistics as a CSV attachment.
func (h *ReportHandler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := h.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	stats, err := h.service.DescribeTable(r.Context(), filename, file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	writeAttachmentHeaders(w, exportName(filename, "summary"))
	if err := h.exporter.WriteColumnStats(w, stats); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream summary export",
			slog.String("error", err.Error()),
			slog.String("filename", filename))
	}
}

// GetTemplate handles GET /api/reports/template.
func (h *ReportHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   h.service.Template(),
	})
}

// uploadedFile extracts the multipart "file" field. On failure it writes
// the error response itself and reports ok=false.
func (h *ReportHandler) uploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, string, bool) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			h.errorHandler.HandleError(w, r, apierrors.ErrUploadTooLarge)
		} else {
			h.errorHandler.HandleError(w, r, apierrors.ErrMissingUpload)
		}
		return nil, "", false
	}
	return file, header.Filename, true
}

func writeAttachmentHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

// exportName derives the download filename from the upload, e.g.
// "march.xlsx" with suffix "summary" becomes "march_summary.csv".
func exportName(uploadName, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(uploadName), filepath.Ext(uploadName))
	if base == "" {
		base = "call_report"
	}
	return fmt.Sprintf("%s_%s.csv", base, suffix)
}
