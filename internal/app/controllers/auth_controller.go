// Package controllers wires HTTP requests to the service layer.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// AuthController handles registration, login and password reset
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles student self-registration
// @Summary Register a new student
// @Description Creates a student account and sends a welcome email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromStudent(student)))
}

// Login handles student login
// @Summary Authenticate a student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
		Token: *token,
		User:  dto.FromStudent(student),
	}))
}

// AdminLogin handles placement staff login
// @Summary Authenticate placement staff
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	token, err := c.authService.AdminLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(token))
}

// ResetPassword handles the forgot-password flow
// @Summary Reset a forgotten password
// @Description Replaces the password for the matching student ID
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset data"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Password reset successful"}))
}
