package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvesh/placementcell/internal/app/models"
)

func TestApplyRecordsApplicationAndSendsEmail(t *testing.T) {
	repos := newTestRepos(t)
	mailer := &fakeMailer{}
	svc := NewApplicationService(repos.Student, repos.Drive, mailer)

	seedStudent(t, repos, models.Student{StudentID: "S1", Name: "Asha", Email: "asha@college.edu"})
	seedDrive(t, repos, models.Drive{ID: "d1", JobID: "acme_engineer", Name: "Acme", Role: "Engineer"})

	student, applied, err := svc.Apply(context.Background(), "S1", "Acme")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []string{"Acme"}, student.Applications)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "application", mailer.sent[0].kind)
	assert.Equal(t, "asha@college.edu", mailer.sent[0].toEmail)
}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	repos := newTestRepos(t)
	mailer := &fakeMailer{}
	svc := NewApplicationService(repos.Student, repos.Drive, mailer)

	seedStudent(t, repos, models.Student{StudentID: "S1", Email: "s1@college.edu"})
	seedDrive(t, repos, models.Drive{ID: "d1", JobID: "acme_engineer", Name: "Acme", Role: "Engineer"})

	_, applied, err := svc.Apply(context.Background(), "S1", "Acme")
	require.NoError(t, err)
	require.True(t, applied)

	student, applied, err := svc.Apply(context.Background(), "S1", "Acme")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, []string{"Acme"}, student.Applications)

	// No second confirmation for the repeat
	assert.Len(t, mailer.sent, 1)
}

func TestApplyUnknownCompanyIsNoOp(t *testing.T) {
	repos := newTestRepos(t)
	mailer := &fakeMailer{}
	svc := NewApplicationService(repos.Student, repos.Drive, mailer)

	seedStudent(t, repos, models.Student{StudentID: "S1", Email: "s1@college.edu"})

	student, applied, err := svc.Apply(context.Background(), "S1", "Nowhere Corp")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Nil(t, student)
	assert.Empty(t, mailer.sent)
}

func TestApplyUnknownStudentIsNoOp(t *testing.T) {
	repos := newTestRepos(t)
	mailer := &fakeMailer{}
	svc := NewApplicationService(repos.Student, repos.Drive, mailer)

	seedDrive(t, repos, models.Drive{ID: "d1", JobID: "acme_engineer", Name: "Acme", Role: "Engineer"})

	student, applied, err := svc.Apply(context.Background(), "ghost", "Acme")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Nil(t, student)
}

func TestApplySucceedsWhenEmailFails(t *testing.T) {
	repos := newTestRepos(t)
	mailer := &fakeMailer{fail: true}
	svc := NewApplicationService(repos.Student, repos.Drive, mailer)

	seedStudent(t, repos, models.Student{StudentID: "S1", Email: "s1@college.edu"})
	seedDrive(t, repos, models.Drive{ID: "d1", JobID: "acme_engineer", Name: "Acme", Role: "Engineer"})

	student, applied, err := svc.Apply(context.Background(), "S1", "Acme")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []string{"Acme"}, student.Applications)

	// The mutation persisted despite the delivery failure
	persisted, err := repos.Student.GetByID(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, persisted.Applications)
}
