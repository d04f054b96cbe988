package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
)

func newShortlistFixture(t *testing.T) (*ShortlistService, *fakeMailer, context.Context) {
	t.Helper()
	repos := newTestRepos(t)
	mailer := &fakeMailer{}
	svc := NewShortlistService(repos.Student, repos.Drive, mailer)

	seedStudent(t, repos, models.Student{StudentID: "S1", Name: "Asha", Email: "asha@college.edu", Applications: []string{"Acme"}})
	seedDrive(t, repos, models.Drive{ID: "d1", JobID: "acme_engineer", Name: "Acme", Role: "Engineer"})

	return svc, mailer, context.Background()
}

func TestMarkShortlistedSetsRoundFlag(t *testing.T) {
	svc, mailer, ctx := newShortlistFixture(t)

	student, changed, err := svc.MarkShortlisted(ctx, "S1", "acme_engineer", "Round 1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, student.Shortlists["acme_engineer"]["Round 1"])

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "shortlisted", mailer.sent[0].kind)
}

func TestMarkShortlistedRepeatIsIdempotentButStillNotifies(t *testing.T) {
	svc, mailer, ctx := newShortlistFixture(t)

	first, _, err := svc.MarkShortlisted(ctx, "S1", "acme_engineer", "Round 1")
	require.NoError(t, err)

	second, changed, err := svc.MarkShortlisted(ctx, "S1", "acme_engineer", "Round 1")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first.Shortlists, second.Shortlists)

	// Delivery is at-least-once: the repeat still sends
	assert.Len(t, mailer.sent, 2)
}

func TestMarkSelectedWithoutPriorRounds(t *testing.T) {
	svc, mailer, ctx := newShortlistFixture(t)

	student, changed, err := svc.MarkSelected(ctx, "S1", "acme_engineer", "HR Round")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"acme_engineer"}, student.Selected)
	assert.True(t, student.Shortlists["acme_engineer"]["HR Round"])

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "selected", mailer.sent[0].kind)
}

func TestMarkSelectedIsAppendOnlyWithoutDuplicates(t *testing.T) {
	svc, _, ctx := newShortlistFixture(t)

	_, _, err := svc.MarkSelected(ctx, "S1", "acme_engineer", "HR Round")
	require.NoError(t, err)

	student, changed, err := svc.MarkSelected(ctx, "S1", "acme_engineer", "HR Round")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"acme_engineer"}, student.Selected)
}

func TestMarkShortlistedUnknownStudent(t *testing.T) {
	svc, _, ctx := newShortlistFixture(t)

	_, _, err := svc.MarkShortlisted(ctx, "ghost", "acme_engineer", "Round 1")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestMarkShortlistedUnknownRound(t *testing.T) {
	svc, mailer, ctx := newShortlistFixture(t)

	_, _, err := svc.MarkShortlisted(ctx, "S1", "acme_engineer", "Round 99")
	assert.ErrorIs(t, err, apperrors.ErrUnknownRound)
	assert.Empty(t, mailer.sent)
}

func TestDriveShortlistListsApplicantProgress(t *testing.T) {
	svc, _, ctx := newShortlistFixture(t)

	_, _, err := svc.MarkShortlisted(ctx, "S1", "acme_engineer", "Round 1")
	require.NoError(t, err)

	resp, err := svc.DriveShortlist(ctx, "acme_engineer")
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "S1", resp.Entries[0].StudentID)
	assert.True(t, resp.Entries[0].Rounds["Round 1"])
	assert.False(t, resp.Entries[0].Rounds["HR Round"])
	assert.False(t, resp.Entries[0].Selected)
}
