package dto

import "github.com/anvesh/placementcell/internal/app/models"

// CreateDriveRequest represents a new placement drive announcement
type CreateDriveRequest struct {
	Name                string   `json:"name" binding:"required"`
	Role                string   `json:"role" binding:"required"`
	Package             float64  `json:"package" binding:"required,gt=0"`
	MinCGPA             float64  `json:"minCgpa" binding:"gte=0,lte=10"`
	EligibleDepartments []string `json:"eligibleDepartments" binding:"required,min=1"`
	DateOfDrive         string   `json:"dateOfDrive" binding:"required"`
}

// DriveResponse represents a placement drive
type DriveResponse struct {
	ID                  string   `json:"id"`
	JobID               string   `json:"jobId"`
	Name                string   `json:"name"`
	Role                string   `json:"role"`
	Package             float64  `json:"package"`
	MinCGPA             float64  `json:"minCgpa"`
	EligibleDepartments []string `json:"eligibleDepartments"`
	DateOfDrive         string   `json:"dateOfDrive"`
	Completed           bool     `json:"completed"`
}

// DriveListResponse represents a drive listing
type DriveListResponse struct {
	Drives []DriveResponse `json:"drives"`
	Total  int             `json:"total"`
}

// EligibleDriveFilterRequest represents filters over the eligible list
type EligibleDriveFilterRequest struct {
	Search     string   `form:"search"`
	MinPackage *float64 `form:"minPackage"`
}

// FromDrive maps a stored drive record to its API representation
func FromDrive(d *models.Drive) DriveResponse {
	resp := DriveResponse{
		ID:                  d.ID,
		JobID:               d.JobID,
		Name:                d.Name,
		Role:                d.Role,
		Package:             d.Package.Float(),
		MinCGPA:             d.MinCGPA.Float(),
		EligibleDepartments: d.EligibleDepartments,
		DateOfDrive:         d.DateOfDrive,
		Completed:           d.Completed,
	}
	if resp.EligibleDepartments == nil {
		resp.EligibleDepartments = []string{}
	}
	return resp
}
