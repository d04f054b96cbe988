package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
	"github.com/anvesh/placementcell/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *repositories.Repositories, *fakeMailer) {
	t.Helper()
	repos := newTestRepos(t)
	mailer := &fakeMailer{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	svc := NewAuthService(repos.Student, jwtService, mailer, AdminCredentials{
		Username: "admin",
		Password: "admin123",
	})
	return svc, repos, mailer
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		StudentID: "S100",
		Name:      "Asha",
		Email:     "asha@college.edu",
		Password:  "secret1",
		CGPA:      8.5,
		Branch:    "CSE",
	}
}

func TestRegisterCreatesStudentAndSendsWelcome(t *testing.T) {
	svc, repos, mailer := newAuthFixture(t)

	student, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "S100", student.StudentID)
	assert.NotEqual(t, "secret1", student.Password)

	persisted, err := repos.Student.GetByID(context.Background(), "S100")
	require.NoError(t, err)
	assert.Equal(t, "asha@college.edu", persisted.Email)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "welcome", mailer.sent[0].kind)
}

func TestRegisterDuplicateIdentifierDoesNotMutateStore(t *testing.T) {
	svc, repos, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Email = "other@college.edu"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)

	students, err := repos.Student.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.StudentID = "S200"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterNormalizesIdentifierWhitespace(t *testing.T) {
	svc, repos, _ := newAuthFixture(t)

	req := registerRequest()
	req.StudentID = "  S100  "
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = repos.Student.GetByID(context.Background(), "S100")
	assert.NoError(t, err)
}

func TestRegisterSucceedsWhenWelcomeEmailFails(t *testing.T) {
	svc, repos, mailer := newAuthFixture(t)
	mailer.fail = true

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = repos.Student.GetByID(context.Background(), "S100")
	assert.NoError(t, err)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	student, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		StudentID: "S100",
		Password:  "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "S100", student.StudentID)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), &dto.LoginRequest{
		StudentID: "S100",
		Password:  "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownStudent(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		StudentID: "ghost",
		Password:  "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestLoginAcceptsLegacyDigest(t *testing.T) {
	svc, repos, _ := newAuthFixture(t)

	sum := sha256.Sum256([]byte("oldpass"))
	seedStudent(t, repos, models.Student{
		StudentID: "S1",
		Email:     "old@college.edu",
		Password:  hex.EncodeToString(sum[:]),
	})

	student, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		StudentID: "S1",
		Password:  "oldpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "S1", student.StudentID)
}

func TestAdminLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	token, err := svc.AdminLogin(context.Background(), &dto.AdminLoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)

	_, err = svc.AdminLogin(context.Background(), &dto.AdminLoginRequest{
		Username: "admin",
		Password: "nope",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestResetPasswordMigratesToCurrentScheme(t *testing.T) {
	svc, repos, _ := newAuthFixture(t)

	sum := sha256.Sum256([]byte("oldpass"))
	seedStudent(t, repos, models.Student{
		StudentID: "S1",
		Email:     "old@college.edu",
		Password:  hex.EncodeToString(sum[:]),
	})

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		StudentID:   "S1",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	persisted, err := repos.Student.GetByID(context.Background(), "S1")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(persisted.Password, "newsecret"))
	assert.Len(t, persisted.Password, 60) // bcrypt, not a 64-hex legacy digest

	_, _, err = svc.Login(context.Background(), &dto.LoginRequest{StudentID: "S1", Password: "oldpass"})
	assert.Error(t, err)
}

func TestResetPasswordByIDOnly(t *testing.T) {
	svc, repos, _ := newAuthFixture(t)

	seedStudent(t, repos, models.Student{StudentID: "S1", Email: "right@college.edu", Password: "x"})

	// Only the student ID matters for a reset; no email or old
	// credential is checked.
	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		StudentID:   "S1",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	persisted, err := repos.Student.GetByID(context.Background(), "S1")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(persisted.Password, "newsecret"))
}

func TestResetPasswordUnknownStudent(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		StudentID:   "NOPE",
		NewPassword: "newsecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
