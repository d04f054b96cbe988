package dto

import "github.com/anvesh/placementcell/internal/app/models"

// StudentResponse represents student profile information. The password
// digest never leaves the service layer.
type StudentResponse struct {
	StudentID       string             `json:"studentId"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	CGPA            float64            `json:"cgpa"`
	Branch          string             `json:"branch"`
	Applications    []string           `json:"applications"`
	Selected        []string           `json:"selected"`
	SelectedCompany string             `json:"selectedCompany,omitempty"`

	// Shortlists maps job ID to the rounds cleared for that job
	Shortlists    map[string]map[string]bool `json:"shortlists"`
	ResumeURL     string                     `json:"resumeUrl,omitempty"`
	ProfilePicURL string                     `json:"profilePicUrl,omitempty"`
	Placed        bool                       `json:"placed"`
}

// UpdateProfileRequest represents profile fields a student may edit
type UpdateProfileRequest struct {
	Name   string   `json:"name" binding:"required"`
	Email  string   `json:"email" binding:"required,email"`
	CGPA   *float64 `json:"cgpa,omitempty" binding:"omitempty,gte=0,lte=10"`
	Branch string   `json:"branch,omitempty"`
}

// StudentFilterRequest represents directory search parameters
type StudentFilterRequest struct {
	Search  string   `form:"search"`
	Branch  string   `form:"branch"`
	MinCGPA *float64 `form:"minCgpa"`
	Placed  *bool    `form:"placed"`
}

// StudentListResponse represents a directory listing
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Total    int               `json:"total"`
}

// FromStudent maps a stored student record to its API representation
func FromStudent(s *models.Student) StudentResponse {
	resp := StudentResponse{
		StudentID:       s.StudentID,
		Name:            s.Name,
		Email:           s.Email,
		CGPA:            s.CGPA.Float(),
		Branch:          s.Branch,
		Applications:    s.Applications,
		Selected:        s.Selected,
		SelectedCompany: s.SelectedCompany,
		Shortlists:      s.Shortlists,
		Placed:          s.IsPlaced(),
	}
	if resp.Applications == nil {
		resp.Applications = []string{}
	}
	if resp.Selected == nil {
		resp.Selected = []string{}
	}
	if resp.Shortlists == nil {
		resp.Shortlists = map[string]map[string]bool{}
	}
	if s.Resume != "" {
		resp.ResumeURL = "/uploads/" + s.Resume
	}
	if s.ProfilePic != "" {
		resp.ProfilePicURL = "/uploads/" + s.ProfilePic
	}
	return resp
}
