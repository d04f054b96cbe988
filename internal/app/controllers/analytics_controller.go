package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// AnalyticsController serves the placement dashboard
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new analytics controller
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// Dashboard returns the placement analytics rollup
// @Summary Placement analytics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsResponse}
// @Router /analytics [get]
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	resp, err := c.analyticsService.Dashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
