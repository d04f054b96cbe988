package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// ShortlistController drives the recruitment state machine for
// placement staff
type ShortlistController struct {
	shortlistService *services.ShortlistService
}

// NewShortlistController creates a new shortlist controller
func NewShortlistController(shortlistService *services.ShortlistService) *ShortlistController {
	return &ShortlistController{shortlistService: shortlistService}
}

// MarkShortlisted records a cleared round for a student
// @Summary Shortlist a student for a round
// @Description Idempotent on state; the notification email is sent on every call
// @Tags shortlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ShortlistRequest true "Shortlist data"
// @Success 200 {object} dto.APIResponse{data=dto.ShortlistResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /shortlists [post]
func (c *ShortlistController) MarkShortlisted(ctx *gin.Context) {
	var req dto.ShortlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, changed, err := c.shortlistService.MarkShortlisted(ctx.Request.Context(), req.StudentID, req.JobID, req.Round)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ShortlistResponse{
		StudentID: student.StudentID,
		JobID:     req.JobID,
		Round:     req.Round,
		Changed:   changed,
		Student:   dto.FromStudent(student),
	}))
}

// MarkSelected records a final selection for a student
// @Summary Select a student
// @Description Also clears the given round; does not require earlier rounds
// @Tags shortlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SelectRequest true "Selection data"
// @Success 200 {object} dto.APIResponse{data=dto.ShortlistResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /selections [post]
func (c *ShortlistController) MarkSelected(ctx *gin.Context) {
	var req dto.SelectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, changed, err := c.shortlistService.MarkSelected(ctx.Request.Context(), req.StudentID, req.JobID, req.Round)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ShortlistResponse{
		StudentID: student.StudentID,
		JobID:     req.JobID,
		Round:     req.Round,
		Changed:   changed,
		Student:   dto.FromStudent(student),
	}))
}

// DriveShortlist lists applicant progress for one drive
// @Summary List shortlist progress for a drive
// @Tags shortlists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drive ID or job slug"
// @Success 200 {object} dto.APIResponse{data=dto.DriveShortlistResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /drives/{id}/shortlist [get]
func (c *ShortlistController) DriveShortlist(ctx *gin.Context) {
	resp, err := c.shortlistService.DriveShortlist(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
