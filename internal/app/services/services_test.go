package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/docstore"
)

// fakeMailer records outbound mail instead of delivering it
type fakeMailer struct {
	sent []fakeMail
	fail bool
}

type fakeMail struct {
	kind    string
	toEmail string
	subject string
}

func (m *fakeMailer) Send(toEmail, subject, _ string) error {
	return m.record("raw", toEmail, subject)
}

func (m *fakeMailer) SendWelcomeEmail(toEmail, _ string) error {
	return m.record("welcome", toEmail, "")
}

func (m *fakeMailer) SendApplicationEmail(toEmail, _, companyName, _ string) error {
	return m.record("application", toEmail, companyName)
}

func (m *fakeMailer) SendShortlistEmail(toEmail, _, _, _, jobID, _, status string) error {
	return m.record(status, toEmail, jobID)
}

func (m *fakeMailer) record(kind, toEmail, subject string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, fakeMail{kind: kind, toEmail: toEmail, subject: subject})
	return nil
}

func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	store, err := docstore.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return repositories.NewRepositories(store)
}

func seedStudent(t *testing.T, repos *repositories.Repositories, student models.Student) {
	t.Helper()
	require.NoError(t, repos.Student.Create(context.Background(), &student))
}

func seedDrive(t *testing.T, repos *repositories.Repositories, drive models.Drive) {
	t.Helper()
	require.NoError(t, repos.Drive.Create(context.Background(), &drive))
}
