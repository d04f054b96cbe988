package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// ApplicationController handles student applications
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new application controller
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Apply records an application to a company
// @Summary Apply to a company
// @Description Idempotent: re-applying to the same company reports applied=false and changes nothing
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Application data"
// @Success 200 {object} dto.APIResponse{data=dto.ApplyResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, applied, err := c.applicationService.Apply(ctx.Request.Context(), middleware.SubjectStudentID(ctx), req.CompanyName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ApplyResponse{
		CompanyName: req.CompanyName,
		Applied:     applied,
	}
	if student != nil {
		resp.Student = dto.FromStudent(student)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
