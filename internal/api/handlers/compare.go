package handlers

import (
	"net/http"

	"cng-analyzer/internal/analysis"
	"cng-analyzer/internal/api/models"
	"cng-analyzer/internal/model"

	"github.com/gin-gonic/gin"
)

// CompareHandler handles scenario ranking requests
type CompareHandler struct {
	defaults model.Scenario
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(defaults model.Scenario) *CompareHandler {
	return &CompareHandler{defaults: defaults}
}

// Compare handles POST /api/v1/compare.
// Compared scenarios are not written to the usage log.
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	named := make([]analysis.NamedScenario, 0, len(req.Scenarios))
	for _, s := range req.Scenarios {
		named = append(named, analysis.NamedScenario{
			Name:     s.Name,
			Scenario: s.Scenario.Scenario(h.defaults),
		})
	}

	ranked := analysis.Rank(named)
	c.JSON(http.StatusOK, models.CompareResponse{
		Rankings: ranked,
		Summary:  analysis.Summarize(ranked),
	})
}
