package handlers

import (
	"net/http"

	"cng-analyzer/internal/api/models"
	"cng-analyzer/internal/model"

	"github.com/gin-gonic/gin"
)

// DefaultsHandler serves the form's starting values
type DefaultsHandler struct {
	defaults model.Scenario
}

// NewDefaultsHandler creates a new defaults handler
func NewDefaultsHandler(defaults model.Scenario) *DefaultsHandler {
	return &DefaultsHandler{defaults: defaults}
}

// GetDefaults handles GET /api/v1/defaults
func (h *DefaultsHandler) GetDefaults(c *gin.Context) {
	strong := model.StrongPaybackMonths
	worth := model.WorthItPaybackMonths

	c.JSON(http.StatusOK, models.DefaultsResponse{
		Scenario: h.defaults,
		Thresholds: []models.TierInfo{
			{
				Tier:        model.RecommendationStrong,
				Description: "Payback within six months.",
				MaxMonths:   &strong,
			},
			{
				Tier:        model.RecommendationWorthIt,
				Description: "Payback within a year.",
				MaxMonths:   &worth,
			},
			{
				Tier:        model.RecommendationLongPayback,
				Description: "Payback takes longer than a year.",
			},
			{
				Tier:        model.RecommendationNotCostEffective,
				Description: "CNG is not cheaper per km; the conversion never pays back.",
			},
		},
	})
}
