package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// NotificationController handles the staff announcement feed
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new notification controller
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// Create announces a round for a drive
// @Summary Send a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNotificationRequest true "Notification data"
// @Success 201 {object} dto.APIResponse{data=dto.NotificationResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notifications [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	notification, err := c.notificationService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromNotification(notification)))
}

// List returns the announcement feed
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse}
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	notifications, err := c.notificationService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		Total:         len(notifications),
	}
	for i := range notifications {
		list.Notifications = append(list.Notifications, dto.FromNotification(&notifications[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}
