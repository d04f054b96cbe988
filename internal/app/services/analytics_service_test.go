package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvesh/placementcell/internal/app/models"
)

func TestDashboardYearStatsCountPlacements(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAnalyticsService(repos.Student, repos.Drive, repos.Query, repos.Response)

	seedDrive(t, repos, models.Drive{
		ID: "d1", JobID: "acme_dev", Name: "Acme", Role: "Dev",
		DateOfDrive: "2024-05-10",
	})
	seedDrive(t, repos, models.Drive{
		ID: "d2", JobID: "globex_qa", Name: "Globex", Role: "QA",
		DateOfDrive: "2023-11-02",
	})

	seedStudent(t, repos, models.Student{
		StudentID: "S1", Email: "s1@college.edu",
		Selected: []string{"acme_dev"},
	})
	// A legacy record carries only selected_company; it joins to a
	// drive year by company name.
	seedStudent(t, repos, models.Student{
		StudentID: "S2", Email: "s2@college.edu",
		SelectedCompany: "Globex",
	})
	seedStudent(t, repos, models.Student{StudentID: "S3", Email: "s3@college.edu"})

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.DrivesByYear, 2)
	assert.Equal(t, 2023, resp.DrivesByYear[0].Year)
	assert.Equal(t, 1, resp.DrivesByYear[0].Drives)
	assert.Equal(t, 1, resp.DrivesByYear[0].Placed)
	assert.Equal(t, 2024, resp.DrivesByYear[1].Year)
	assert.Equal(t, 1, resp.DrivesByYear[1].Drives)
	assert.Equal(t, 1, resp.DrivesByYear[1].Placed)

	assert.Equal(t, 3, resp.TotalStudents)
	assert.Equal(t, 2, resp.TotalPlaced)
}

func TestDashboardYearStatsSkipUnparseableDates(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAnalyticsService(repos.Student, repos.Drive, repos.Query, repos.Response)

	seedDrive(t, repos, models.Drive{
		ID: "d1", JobID: "acme_dev", Name: "Acme", Role: "Dev",
		DateOfDrive: "someday",
	})
	seedStudent(t, repos, models.Student{
		StudentID: "S1", Email: "s1@college.edu",
		Selected: []string{"acme_dev"},
	})

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.DrivesByYear)
}
