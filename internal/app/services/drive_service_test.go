package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
)

func createDriveRequest() *dto.CreateDriveRequest {
	return &dto.CreateDriveRequest{
		Name:                "Acme Corp",
		Role:                "Software Engineer",
		Package:             12.5,
		MinCGPA:             7.5,
		EligibleDepartments: []string{"CSE", "it"},
		DateOfDrive:         "2026-09-15",
	}
}

func TestCreateDriveDerivesSlugAndStableID(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewDriveService(repos.Drive, repos.Student)

	drive, err := svc.Create(context.Background(), createDriveRequest())
	require.NoError(t, err)
	assert.Equal(t, "acme_corp_software_engineer", drive.JobID)
	assert.NotEmpty(t, drive.ID)
	assert.Equal(t, []string{"CSE", "IT"}, drive.EligibleDepartments)
	assert.False(t, drive.Completed)
}

func TestCreateDriveRejectsSlugCollision(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewDriveService(repos.Drive, repos.Student)

	_, err := svc.Create(context.Background(), createDriveRequest())
	require.NoError(t, err)

	// Different formatting, same normalized name and role
	dup := createDriveRequest()
	dup.Name = "  acme corp "
	dup.Role = "SOFTWARE ENGINEER"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrJobIDAlreadyExists)
}

func TestCreateDriveValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewDriveService(repos.Drive, repos.Student)

	tests := []struct {
		name   string
		mutate func(*dto.CreateDriveRequest)
	}{
		{"empty name", func(r *dto.CreateDriveRequest) { r.Name = "  " }},
		{"empty role", func(r *dto.CreateDriveRequest) { r.Role = "" }},
		{"zero package", func(r *dto.CreateDriveRequest) { r.Package = 0 }},
		{"cgpa out of range", func(r *dto.CreateDriveRequest) { r.MinCGPA = 11 }},
		{"no departments", func(r *dto.CreateDriveRequest) { r.EligibleDepartments = nil }},
		{"unknown department", func(r *dto.CreateDriveRequest) { r.EligibleDepartments = []string{"ARTS"} }},
		{"bad date", func(r *dto.CreateDriveRequest) { r.DateOfDrive = "15/09/2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createDriveRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestMarkCompletedAndDeleteByStableID(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewDriveService(repos.Drive, repos.Student)

	drive, err := svc.Create(context.Background(), createDriveRequest())
	require.NoError(t, err)

	completed, err := svc.MarkCompleted(context.Background(), drive.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	require.NoError(t, svc.Delete(context.Background(), drive.ID))

	_, err = svc.Get(context.Background(), drive.ID)
	assert.ErrorIs(t, err, apperrors.ErrDriveNotFound)
}

func TestListBackfillsMissingSlug(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewDriveService(repos.Drive, repos.Student)

	// Legacy record written without a slug
	seedDrive(t, repos, models.Drive{Name: "Globex", Role: "Analyst"})

	drives, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 1)
	assert.Equal(t, "globex_analyst", drives[0].JobID)
}

func TestEligibleForStudentAppliesFilters(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewDriveService(repos.Drive, repos.Student)

	seedStudent(t, repos, models.Student{StudentID: "S1", CGPA: models.NewDecimal(9.0), Branch: "CSE"})
	seedDrive(t, repos, models.Drive{
		ID: "d1", JobID: "acme_dev", Name: "Acme", Role: "Developer",
		Package: models.NewDecimal(12), MinCGPA: models.NewDecimal(8.0),
		EligibleDepartments: []string{"CSE"},
	})
	seedDrive(t, repos, models.Drive{
		ID: "d2", JobID: "globex_dev", Name: "Globex", Role: "Developer",
		Package: models.NewDecimal(6), MinCGPA: models.NewDecimal(8.0),
		EligibleDepartments: []string{"CSE"},
	})

	minPackage := 10.0
	drives, err := svc.EligibleForStudent(context.Background(), "S1", &dto.EligibleDriveFilterRequest{
		MinPackage: &minPackage,
	})
	require.NoError(t, err)
	require.Len(t, drives, 1)
	assert.Equal(t, "acme_dev", drives[0].JobID)

	drives, err = svc.EligibleForStudent(context.Background(), "S1", &dto.EligibleDriveFilterRequest{
		Search: "globex",
	})
	require.NoError(t, err)
	require.Len(t, drives, 1)
	assert.Equal(t, "globex_dev", drives[0].JobID)
}
