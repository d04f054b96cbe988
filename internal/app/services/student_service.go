package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
	"github.com/anvesh/placementcell/internal/pkg/filestorage"
	"github.com/anvesh/placementcell/internal/pkg/validation"
)

// StudentService handles student profiles and the admin directory
type StudentService struct {
	studentRepo *repositories.StudentRepository
	storage     *filestorage.LocalStorage
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo *repositories.StudentRepository, storage *filestorage.LocalStorage) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		storage:     storage,
	}
}

// GetProfile returns one student by identifier
func (s *StudentService) GetProfile(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, NormalizeStudentID(studentID))
}

// UpdateProfile edits the mutable profile fields. The identifier is
// immutable after registration and is not editable here.
func (s *StudentService) UpdateProfile(ctx context.Context, studentID string, req *dto.UpdateProfileRequest) (*models.Student, error) {
	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return nil, apperrors.NewValidationError("Email format is invalid")
	}
	if req.CGPA != nil && !validation.ValidCGPA(*req.CGPA) {
		return nil, apperrors.NewValidationError("CGPA must be between 0 and 10")
	}
	if req.Branch != "" && !models.ValidDepartment(req.Branch) {
		return nil, apperrors.NewValidationError("Unknown branch")
	}

	id := NormalizeStudentID(studentID)
	email := strings.TrimSpace(req.Email)

	// Email stays unique across students; an edit must not take over
	// another record's address.
	if owner, err := s.studentRepo.GetByEmail(ctx, email); err == nil && owner.StudentID != id {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	return s.studentRepo.Update(ctx, id, func(student *models.Student) error {
		student.Name = strings.TrimSpace(req.Name)
		student.Email = email
		if req.CGPA != nil {
			student.CGPA = models.NewDecimal(*req.CGPA)
		}
		if req.Branch != "" {
			student.Branch = strings.TrimSpace(req.Branch)
		}
		return nil
	})
}

// UploadResume stores a resume file and records its reference on the
// student. A previously stored resume is removed after the new one is
// in place.
func (s *StudentService) UploadResume(ctx context.Context, studentID string, file *multipart.FileHeader) (*models.Student, error) {
	return s.uploadAttachment(ctx, studentID, file, func(student *models.Student, filename string) string {
		old := student.Resume
		student.Resume = filename
		return old
	})
}

// UploadProfilePic stores a profile picture and records its reference
// on the student
func (s *StudentService) UploadProfilePic(ctx context.Context, studentID string, file *multipart.FileHeader) (*models.Student, error) {
	return s.uploadAttachment(ctx, studentID, file, func(student *models.Student, filename string) string {
		old := student.ProfilePic
		student.ProfilePic = filename
		return old
	})
}

func (s *StudentService) uploadAttachment(ctx context.Context, studentID string, file *multipart.FileHeader, swap func(*models.Student, string) string) (*models.Student, error) {
	saved, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, err
	}
	// Records keep the bare filename; the URL prefix is presentation
	filename := filepath.Base(saved)

	var old string
	student, err := s.studentRepo.Update(ctx, NormalizeStudentID(studentID), func(st *models.Student) error {
		old = swap(st, filename)
		return nil
	})
	if err != nil {
		_ = s.storage.DeleteFile(filename)
		return nil, err
	}

	if old != "" {
		_ = s.storage.DeleteFile(old)
	}
	return student, nil
}

// Directory lists students for placement staff, with optional search
// over identifier and name plus branch, CGPA and placement filters
func (s *StudentService) Directory(ctx context.Context, filter *dto.StudentFilterRequest) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return students, nil
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	branch := strings.ToUpper(strings.TrimSpace(filter.Branch))

	filtered := make([]models.Student, 0, len(students))
	for _, student := range students {
		if search != "" &&
			!strings.Contains(strings.ToLower(student.StudentID), search) &&
			!strings.Contains(strings.ToLower(student.Name), search) {
			continue
		}
		if branch != "" && strings.ToUpper(strings.TrimSpace(student.Branch)) != branch {
			continue
		}
		if filter.MinCGPA != nil && student.CGPA.Float() < *filter.MinCGPA {
			continue
		}
		if filter.Placed != nil && student.IsPlaced() != *filter.Placed {
			continue
		}
		filtered = append(filtered, student)
	}
	return filtered, nil
}
