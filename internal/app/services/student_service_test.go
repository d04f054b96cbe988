package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
	"github.com/anvesh/placementcell/internal/pkg/filestorage"
)

func newStudentFixture(t *testing.T) (*StudentService, *repositories.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return NewStudentService(repos.Student, storage), repos
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	svc, repos := newStudentFixture(t)

	seedStudent(t, repos, models.Student{StudentID: "S1", Name: "Asha", Email: "asha@college.edu"})
	seedStudent(t, repos, models.Student{StudentID: "S2", Name: "Ravi", Email: "ravi@college.edu"})

	_, err := svc.UpdateProfile(context.Background(), "S2", &dto.UpdateProfileRequest{
		Name:  "Ravi",
		Email: "asha@college.edu",
	})
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	persisted, err := repos.Student.GetByID(context.Background(), "S2")
	require.NoError(t, err)
	assert.Equal(t, "ravi@college.edu", persisted.Email)
}

func TestUpdateProfileKeepsOwnEmail(t *testing.T) {
	svc, repos := newStudentFixture(t)

	seedStudent(t, repos, models.Student{StudentID: "S1", Name: "Asha", Email: "asha@college.edu"})

	updated, err := svc.UpdateProfile(context.Background(), "S1", &dto.UpdateProfileRequest{
		Name:  "Asha K",
		Email: "asha@college.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, "asha@college.edu", updated.Email)
}

func TestUpdateProfileIdentifierImmutable(t *testing.T) {
	svc, repos := newStudentFixture(t)

	seedStudent(t, repos, models.Student{StudentID: "S1", Name: "Asha", Email: "asha@college.edu"})

	updated, err := svc.UpdateProfile(context.Background(), "S1", &dto.UpdateProfileRequest{
		Name:  "Asha",
		Email: "new@college.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "S1", updated.StudentID)
	assert.Equal(t, "new@college.edu", updated.Email)
}
