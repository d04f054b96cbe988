package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// DriveController handles the placement drive registry
type DriveController struct {
	driveService *services.DriveService
}

// NewDriveController creates a new drive controller
func NewDriveController(driveService *services.DriveService) *DriveController {
	return &DriveController{driveService: driveService}
}

// Create announces a new placement drive
// @Summary Create a drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDriveRequest true "Drive data"
// @Success 201 {object} dto.APIResponse{data=dto.DriveResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /drives [post]
func (c *DriveController) Create(ctx *gin.Context) {
	var req dto.CreateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	drive, err := c.driveService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromDrive(drive)))
}

// List returns every drive
// @Summary List all drives
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DriveListResponse}
// @Router /drives [get]
func (c *DriveController) List(ctx *gin.Context) {
	drives, err := c.driveService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(driveList(drives)))
}

// Eligible returns the open drives the authenticated student may apply to
// @Summary List eligible drives
// @Description Open drives matching the student's CGPA and branch, with optional search and package filters
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against company name or role"
// @Param minPackage query number false "Minimum package"
// @Success 200 {object} dto.APIResponse{data=dto.DriveListResponse}
// @Router /drives/eligible [get]
func (c *DriveController) Eligible(ctx *gin.Context) {
	var filter dto.EligibleDriveFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	drives, err := c.driveService.EligibleForStudent(ctx.Request.Context(), middleware.SubjectStudentID(ctx), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(driveList(drives)))
}

// MarkCompleted closes a drive
// @Summary Mark a drive completed
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /drives/{id}/complete [put]
func (c *DriveController) MarkCompleted(ctx *gin.Context) {
	drive, err := c.driveService.MarkCompleted(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromDrive(drive)))
}

// Delete removes a drive
// @Summary Delete a drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /drives/{id} [delete]
func (c *DriveController) Delete(ctx *gin.Context) {
	if err := c.driveService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Drive deleted"}))
}

func driveList(drives []models.Drive) dto.DriveListResponse {
	list := dto.DriveListResponse{
		Drives: make([]dto.DriveResponse, 0, len(drives)),
		Total:  len(drives),
	}
	for i := range drives {
		list.Drives = append(list.Drives, dto.FromDrive(&drives[i]))
	}
	return list
}
