package services

import (
	"context"
	"strings"
	"time"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
)

// QueryService handles student questions and staff answers. Answers
// carry the asking student's identifier and a copy of the question
// text instead of a foreign key, so one question can accumulate
// several answers and nothing marks a question as closed.
type QueryService struct {
	queryRepo    *repositories.QueryRepository
	responseRepo *repositories.ResponseRepository
	studentRepo  *repositories.StudentRepository
}

// NewQueryService creates a new query service
func NewQueryService(
	queryRepo *repositories.QueryRepository,
	responseRepo *repositories.ResponseRepository,
	studentRepo *repositories.StudentRepository,
) *QueryService {
	return &QueryService{
		queryRepo:    queryRepo,
		responseRepo: responseRepo,
		studentRepo:  studentRepo,
	}
}

// Submit records a student question
func (s *QueryService) Submit(ctx context.Context, studentID string, req *dto.CreateQueryRequest) (*models.Query, error) {
	student, err := s.studentRepo.GetByID(ctx, NormalizeStudentID(studentID))
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)
	if subject == "" || message == "" {
		return nil, apperrors.NewValidationError("Subject and message are required")
	}

	query := &models.Query{
		StudentName: student.Name,
		StudentID:   student.StudentID,
		Subject:     subject,
		Message:     message,
		Date:        time.Now().Format(time.RFC3339),
	}

	if err := s.queryRepo.Create(ctx, query); err != nil {
		return nil, err
	}
	return query, nil
}

// ListAll returns every student question, for placement staff
func (s *QueryService) ListAll(ctx context.Context) ([]models.Query, error) {
	return s.queryRepo.GetAll(ctx)
}

// Respond records a staff answer to a student question
func (s *QueryService) Respond(ctx context.Context, req *dto.RespondQueryRequest) (*models.Response, error) {
	student, err := s.studentRepo.GetByID(ctx, NormalizeStudentID(req.StudentID))
	if err != nil {
		return nil, err
	}

	response := &models.Response{
		StudentID:     student.StudentID,
		StudentName:   student.Name,
		OriginalQuery: req.Query,
		Response:      req.Response,
		ResponseDate:  time.Now().Format("2006-01-02"),
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}

// AnswersForStudent returns the answers addressed to one student
func (s *QueryService) AnswersForStudent(ctx context.Context, studentID string) ([]models.Response, error) {
	return s.responseRepo.GetByStudent(ctx, NormalizeStudentID(studentID))
}

// QueriesForStudent returns the questions raised by one student
func (s *QueryService) QueriesForStudent(ctx context.Context, studentID string) ([]models.Query, error) {
	return s.queryRepo.GetByStudent(ctx, NormalizeStudentID(studentID))
}
