package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// QueryController handles student questions and staff answers
type QueryController struct {
	queryService *services.QueryService
}

// NewQueryController creates a new query controller
func NewQueryController(queryService *services.QueryService) *QueryController {
	return &QueryController{queryService: queryService}
}

// Submit records a question from the authenticated student
// @Summary Submit a query
// @Tags queries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQueryRequest true "Query data"
// @Success 201 {object} dto.APIResponse{data=dto.QueryResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /queries [post]
func (c *QueryController) Submit(ctx *gin.Context) {
	var req dto.CreateQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	query, err := c.queryService.Submit(ctx.Request.Context(), middleware.SubjectStudentID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromQuery(query)))
}

// ListAll returns every student question, for placement staff
// @Summary List all queries
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.QueryListResponse}
// @Router /queries [get]
func (c *QueryController) ListAll(ctx *gin.Context) {
	queries, err := c.queryService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(queryList(queries)))
}

// ListMine returns the authenticated student's questions
// @Summary List own queries
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.QueryListResponse}
// @Router /queries/mine [get]
func (c *QueryController) ListMine(ctx *gin.Context) {
	queries, err := c.queryService.QueriesForStudent(ctx.Request.Context(), middleware.SubjectStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(queryList(queries)))
}

// Respond records a staff answer to a question
// @Summary Respond to a query
// @Tags queries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RespondQueryRequest true "Response data"
// @Success 201 {object} dto.APIResponse{data=dto.AnswerResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /queries/respond [post]
func (c *QueryController) Respond(ctx *gin.Context) {
	var req dto.RespondQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	response, err := c.queryService.Respond(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromResponse(response)))
}

// Answers returns the staff answers addressed to the authenticated student
// @Summary List own answers
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AnswerListResponse}
// @Router /queries/answers [get]
func (c *QueryController) Answers(ctx *gin.Context) {
	answers, err := c.queryService.AnswersForStudent(ctx.Request.Context(), middleware.SubjectStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.AnswerListResponse{
		Answers: make([]dto.AnswerResponse, 0, len(answers)),
		Total:   len(answers),
	}
	for i := range answers {
		list.Answers = append(list.Answers, dto.FromResponse(&answers[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}

func queryList(queries []models.Query) dto.QueryListResponse {
	list := dto.QueryListResponse{
		Queries: make([]dto.QueryResponse, 0, len(queries)),
		Total:   len(queries),
	}
	for i := range queries {
		list.Queries = append(list.Queries, dto.FromQuery(&queries[i]))
	}
	return list
}
