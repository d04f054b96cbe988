// Package services implements the business rules of the placement
// portal on top of the repositories.
package services

import (
	"context"
	"strings"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
	"github.com/anvesh/placementcell/internal/pkg/auth"
	"github.com/anvesh/placementcell/internal/pkg/email"
	"github.com/anvesh/placementcell/internal/pkg/logger"
	"github.com/anvesh/placementcell/internal/pkg/validation"
)

// AdminCredentials holds the configured placement staff login
type AdminCredentials struct {
	Username string
	Password string
}

// AuthService handles registration, login and password reset
type AuthService struct {
	studentRepo *repositories.StudentRepository
	jwtService  *auth.JWTService
	mailer      email.Mailer
	admin       AdminCredentials
}

// NewAuthService creates a new authentication service
func NewAuthService(
	studentRepo *repositories.StudentRepository,
	jwtService *auth.JWTService,
	mailer email.Mailer,
	admin AdminCredentials,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		mailer:      mailer,
		admin:       admin,
	}
}

// NormalizeStudentID returns the canonical form of a student
// identifier. Every lookup and every stored record goes through this,
// so an identifier typed with stray whitespace still matches.
func NormalizeStudentID(studentID string) string {
	return strings.TrimSpace(studentID)
}

// Register creates a new student account. The welcome email is sent
// after the record is persisted and a failed send does not undo the
// registration.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error) {
	studentID := NormalizeStudentID(req.StudentID)
	if !validation.CompiledPatterns.Identifier.MatchString(studentID) {
		return nil, apperrors.NewValidationError("Student ID must be 4-20 alphanumeric characters")
	}
	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return nil, apperrors.NewValidationError("Email format is invalid")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError("Password must be at least 6 characters")
	}
	if !validation.ValidCGPA(req.CGPA) {
		return nil, apperrors.NewValidationError("CGPA must be between 0 and 10")
	}
	if !models.ValidDepartment(req.Branch) {
		return nil, apperrors.NewValidationError("Unknown branch")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:    studentID,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Password:     hashedPassword,
		CGPA:         models.NewDecimal(req.CGPA),
		Branch:       strings.TrimSpace(req.Branch),
		Applications: []string{},
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcomeEmail(student.Email, student.Name); err != nil {
		logger.Warn().Err(err).Str("studentId", student.StudentID).Msg("Failed to send welcome email")
	}

	return student, nil
}

// Login authenticates a student and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Student, *dto.TokenResponse, error) {
	studentID := NormalizeStudentID(req.StudentID)

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student.StudentID, student.Email, auth.RoleStudent)
	if err != nil {
		return nil, nil, err
	}

	return student, &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// AdminLogin authenticates placement staff against the configured
// credentials and issues an access token
func (s *AuthService) AdminLogin(_ context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	if req.Username != s.admin.Username || req.Password != s.admin.Password {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(s.admin.Username, "", auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// ResetPassword replaces a forgotten password for the matching student
// ID. The old credential is never checked. The new digest always uses
// the current hashing scheme, so a reset migrates accounts off legacy
// digests.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	studentID := NormalizeStudentID(req.StudentID)
	if len(req.NewPassword) < validation.PasswordMinLength {
		return apperrors.NewValidationError("Password must be at least 6 characters")
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	_, err = s.studentRepo.Update(ctx, studentID, func(student *models.Student) error {
		student.Password = hashedPassword
		return nil
	})
	return err
}
