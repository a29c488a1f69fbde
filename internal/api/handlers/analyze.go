package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"cng-analyzer/internal/api/models"
	"cng-analyzer/internal/chart"
	"cng-analyzer/internal/model"
	"cng-analyzer/internal/pipeline"
	"cng-analyzer/internal/report"
	"cng-analyzer/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AnalyzeHandler handles analysis requests
type AnalyzeHandler struct {
	engine   *pipeline.Engine
	store    *store.Store
	defaults model.Scenario
	logger   zerolog.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(engine *pipeline.Engine, st *store.Store, defaults model.Scenario, logger zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{engine: engine, store: st, defaults: defaults, logger: logger}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}
	scenario := req.Scenario(h.defaults)

	out, err := h.engine.Run(scenario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "LOG_WRITE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	entry := h.store.Put(out.Scenario, out.Result)
	h.logger.Info().
		Str("id", entry.ID).
		Str("tier", string(out.Advice.Tier)).
		Msg("analysis stored")

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		ID:        entry.ID,
		ExpiresAt: entry.ExpiresAt,
		Scenario:  out.Scenario,
		Result:    out.Result,
		Payback:   report.PaybackText(out.Result.Payback),
		Metrics:   out.Metrics,
		Advice:    out.Advice,
		Charts:    out.Charts,
		Report:    report.Text(out.Result),
		Logged:    out.Logged,
		Links:     reportLinks(entry.ID),
	})
}

func reportLinks(id string) models.ReportLinks {
	base := "/api/v1/reports/" + id
	charts := make(map[string]string, len(chart.Kinds))
	for _, k := range chart.Kinds {
		charts[string(k)] = fmt.Sprintf("%s/charts/%s", base, k)
	}
	return models.ReportLinks{
		PDF:    base + "/pdf",
		XLSX:   base + "/xlsx",
		Charts: charts,
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
