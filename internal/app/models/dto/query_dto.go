package dto

import "github.com/anvesh/placementcell/internal/app/models"

// CreateQueryRequest represents a student question for placement staff
type CreateQueryRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// RespondQueryRequest represents a staff answer to a student question
type RespondQueryRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Query     string `json:"query" binding:"required"`
	Response  string `json:"response" binding:"required"`
}

// QueryResponse represents a student question
type QueryResponse struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Date        string `json:"date"`
}

// QueryListResponse represents a question listing
type QueryListResponse struct {
	Queries []QueryResponse `json:"queries"`
	Total   int             `json:"total"`
}

// AnswerResponse represents a staff answer delivered to a student
type AnswerResponse struct {
	StudentID     string `json:"studentId"`
	StudentName   string `json:"studentName"`
	OriginalQuery string `json:"originalQuery"`
	Response      string `json:"response"`
	ResponseDate  string `json:"responseDate"`
}

// AnswerListResponse represents the answers addressed to one student
type AnswerListResponse struct {
	Answers []AnswerResponse `json:"answers"`
	Total   int              `json:"total"`
}

// FromQuery maps a stored query to its API representation
func FromQuery(q *models.Query) QueryResponse {
	return QueryResponse{
		StudentID:   q.StudentID,
		StudentName: q.StudentName,
		Subject:     q.Subject,
		Message:     q.Message,
		Date:        q.Date,
	}
}

// FromResponse maps a stored answer to its API representation
func FromResponse(r *models.Response) AnswerResponse {
	return AnswerResponse{
		StudentID:     r.StudentID,
		StudentName:   r.StudentName,
		OriginalQuery: r.OriginalQuery,
		Response:      r.Response,
		ResponseDate:  r.ResponseDate,
	}
}
