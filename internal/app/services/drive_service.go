package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
	"github.com/anvesh/placementcell/internal/pkg/validation"
)

// DriveService handles the placement drive registry
type DriveService struct {
	driveRepo   *repositories.DriveRepository
	studentRepo *repositories.StudentRepository
}

// NewDriveService creates a new drive service
func NewDriveService(driveRepo *repositories.DriveRepository, studentRepo *repositories.StudentRepository) *DriveService {
	return &DriveService{
		driveRepo:   driveRepo,
		studentRepo: studentRepo,
	}
}

// Create announces a new placement drive. The job slug is derived from
// name and role; two drives normalizing to the same slug would be
// indistinguishable in shortlist state, so a colliding slug is rejected
// as a conflict. Every drive gets a generated identifier that stays
// stable across reloads, unlike its position in the collection.
func (s *DriveService) Create(ctx context.Context, req *dto.CreateDriveRequest) (*models.Drive, error) {
	name := strings.TrimSpace(req.Name)
	role := strings.TrimSpace(req.Role)
	if name == "" || role == "" {
		return nil, apperrors.NewValidationError("Company name and role are required")
	}
	if req.Package <= 0 {
		return nil, apperrors.NewValidationError("Package must be greater than zero")
	}
	if !validation.ValidCGPA(req.MinCGPA) {
		return nil, apperrors.NewValidationError("Minimum CGPA must be between 0 and 10")
	}
	if len(req.EligibleDepartments) == 0 {
		return nil, apperrors.NewValidationError("At least one eligible department is required")
	}

	departments := make([]string, 0, len(req.EligibleDepartments))
	for _, dept := range req.EligibleDepartments {
		dept = strings.ToUpper(strings.TrimSpace(dept))
		if !models.ValidDepartment(dept) {
			return nil, apperrors.NewValidationError("Unknown department: " + dept)
		}
		departments = append(departments, dept)
	}

	if _, err := time.Parse(models.DriveDateLayout, req.DateOfDrive); err != nil {
		return nil, apperrors.NewValidationError("Drive date must be in YYYY-MM-DD format")
	}

	drive := &models.Drive{
		ID:                  uuid.New().String(),
		JobID:               models.GenerateJobID(name, role),
		Name:                name,
		Role:                role,
		Package:             models.NewDecimal(req.Package),
		MinCGPA:             models.NewDecimal(req.MinCGPA),
		EligibleDepartments: departments,
		DateOfDrive:         req.DateOfDrive,
	}

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}
	return drive, nil
}

// List returns every drive. Records written before slugs were stored
// get their job identifier backfilled on the way out, since the slug is
// a pure function of name and role.
func (s *DriveService) List(ctx context.Context) ([]models.Drive, error) {
	drives, err := s.driveRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range drives {
		if drives[i].JobID == "" {
			drives[i].JobID = models.GenerateJobID(drives[i].Name, drives[i].Role)
		}
	}
	return drives, nil
}

// Get returns one drive by stable identifier
func (s *DriveService) Get(ctx context.Context, id string) (*models.Drive, error) {
	return s.driveRepo.GetByID(ctx, id)
}

// MarkCompleted closes a drive by stable identifier
func (s *DriveService) MarkCompleted(ctx context.Context, id string) (*models.Drive, error) {
	return s.driveRepo.Update(ctx, id, func(drive *models.Drive) error {
		drive.Completed = true
		return nil
	})
}

// Delete removes a drive by stable identifier
func (s *DriveService) Delete(ctx context.Context, id string) error {
	return s.driveRepo.Delete(ctx, id)
}

// EligibleForStudent returns the open drives the student may apply to,
// optionally narrowed by a case-insensitive name/role search and a
// minimum package
func (s *DriveService) EligibleForStudent(ctx context.Context, studentID string, filter *dto.EligibleDriveFilterRequest) ([]models.Drive, error) {
	student, err := s.studentRepo.GetByID(ctx, NormalizeStudentID(studentID))
	if err != nil {
		return nil, err
	}

	drives, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	eligible := EligibleDrives(student, drives)
	if filter == nil {
		return eligible, nil
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := make([]models.Drive, 0, len(eligible))
	for _, drive := range eligible {
		if search != "" &&
			!strings.Contains(strings.ToLower(drive.Name), search) &&
			!strings.Contains(strings.ToLower(drive.Role), search) {
			continue
		}
		if filter.MinPackage != nil && drive.Package.Float() < *filter.MinPackage {
			continue
		}
		filtered = append(filtered, drive)
	}
	return filtered, nil
}
