package services

import (
	"context"
	"errors"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
	"github.com/anvesh/placementcell/internal/pkg/email"
	"github.com/anvesh/placementcell/internal/pkg/logger"
)

// ApplicationService handles student applications to placement drives
type ApplicationService struct {
	studentRepo *repositories.StudentRepository
	driveRepo   *repositories.DriveRepository
	mailer      email.Mailer
}

// NewApplicationService creates a new application service
func NewApplicationService(
	studentRepo *repositories.StudentRepository,
	driveRepo *repositories.DriveRepository,
	mailer email.Mailer,
) *ApplicationService {
	return &ApplicationService{
		studentRepo: studentRepo,
		driveRepo:   driveRepo,
		mailer:      mailer,
	}
}

// Apply records an application to a company, keyed by exact company
// name. An unknown student or company is a no-op, not an error, and so
// is applying twice: the caller sees applied=false and nothing changes.
// The confirmation email goes out only after the record is persisted
// and a failed send does not undo the application.
func (s *ApplicationService) Apply(ctx context.Context, studentID, companyName string) (*models.Student, bool, error) {
	drive, err := s.findDriveByName(ctx, companyName)
	if err != nil {
		return nil, false, err
	}
	if drive == nil {
		logger.Warn().Str("studentId", studentID).Str("company", companyName).Msg("Application to unknown company ignored")
		return nil, false, nil
	}

	applied := false
	student, err := s.studentRepo.Update(ctx, NormalizeStudentID(studentID), func(st *models.Student) error {
		if st.HasApplied(drive.Name) {
			return nil
		}
		st.Applications = append(st.Applications, drive.Name)
		applied = true
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			logger.Warn().Str("studentId", studentID).Str("company", companyName).Msg("Application by unknown student ignored")
			return nil, false, nil
		}
		return nil, false, err
	}

	if applied {
		if err := s.mailer.SendApplicationEmail(student.Email, student.Name, drive.Name, drive.Role); err != nil {
			logger.Warn().Err(err).
				Str("studentId", student.StudentID).
				Str("company", drive.Name).
				Msg("Failed to send application email")
		}
	}

	return student, applied, nil
}

func (s *ApplicationService) findDriveByName(ctx context.Context, companyName string) (*models.Drive, error) {
	drives, err := s.driveRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range drives {
		if drives[i].Name == companyName {
			return &drives[i], nil
		}
	}
	return nil, nil
}
