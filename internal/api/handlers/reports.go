package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"cng-analyzer/internal/api/models"
	"cng-analyzer/internal/chart"
	"cng-analyzer/internal/export"
	"cng-analyzer/internal/model"
	"cng-analyzer/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ExportObserver counts downloads. Optional.
type ExportObserver interface {
	ObserveExport(format string)
}

// ReportHandler serves downloads for stored analyses
type ReportHandler struct {
	store    *store.Store
	observer ExportObserver
	logger   zerolog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(st *store.Store, observer ExportObserver, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{store: st, observer: observer, logger: logger}
}

// PDF handles GET /api/v1/reports/:id/pdf
func (h *ReportHandler) PDF(c *gin.Context) {
	h.serve(c, "pdf", export.PDFFileName, export.PDFMIME, export.PDF)
}

// XLSX handles GET /api/v1/reports/:id/xlsx
func (h *ReportHandler) XLSX(c *gin.Context) {
	h.serve(c, "xlsx", export.XLSXFileName, export.XLSXMIME, export.XLSX)
}

// Chart handles GET /api/v1/reports/:id/charts/:name?format=svg|png
func (h *ReportHandler) Chart(c *gin.Context) {
	format, err := chart.ParseFormat(c.Query("format"))
	if err != nil {
		badRequest(c, err)
		return
	}
	kind := chart.Kind(c.Param("name"))
	h.serve(c, "chart_"+string(format), fmt.Sprintf("%s.%s", kind, format), format.ContentType(),
		func(r model.Result) ([]byte, error) {
			cfg, err := chart.Build(kind, r)
			if err != nil {
				return nil, errUnknownChart{err}
			}
			var buf bytes.Buffer
			if err := chart.Render(cfg, format, &buf); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		})
}

type errUnknownChart struct{ error }

func (h *ReportHandler) serve(c *gin.Context, format, filename, mime string, encode func(model.Result) ([]byte, error)) {
	entry, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "NOT_FOUND",
					Message: "analysis not found or expired; run POST /api/v1/analyze again",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "STORE_ERROR", Message: err.Error()},
		})
		return
	}

	body, err := encode(entry.Result)
	if err != nil {
		var unknown errUnknownChart
		if errors.As(err, &unknown) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "NOT_FOUND", Message: err.Error()},
			})
			return
		}
		h.logger.Error().Err(err).Str("format", format).Str("id", entry.ID).Msg("export failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "EXPORT_ERROR", Message: err.Error()},
		})
		return
	}

	if h.observer != nil {
		h.observer.ObserveExport(format)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mime, body)
}
