package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvesh/placementcell/internal/app/models"
)

func TestEligible(t *testing.T) {
	tests := []struct {
		name    string
		student models.Student
		drive   models.Drive
		want    bool
	}{
		{
			name:    "cgpa and branch match",
			student: models.Student{CGPA: models.NewDecimal(8.5), Branch: "CSE"},
			drive:   models.Drive{MinCGPA: models.NewDecimal(8.0), EligibleDepartments: []string{"CSE", "IT"}},
			want:    true,
		},
		{
			name:    "cgpa below cutoff",
			student: models.Student{CGPA: models.NewDecimal(8.5), Branch: "CSE"},
			drive:   models.Drive{MinCGPA: models.NewDecimal(9.0), EligibleDepartments: []string{"CSE", "IT"}},
			want:    false,
		},
		{
			name:    "cgpa exactly at cutoff is inclusive",
			student: models.Student{CGPA: models.NewDecimal(8.0), Branch: "IT"},
			drive:   models.Drive{MinCGPA: models.NewDecimal(8.0), EligibleDepartments: []string{"IT"}},
			want:    true,
		},
		{
			name:    "branch not in department set",
			student: models.Student{CGPA: models.NewDecimal(9.0), Branch: "MECH"},
			drive:   models.Drive{MinCGPA: models.NewDecimal(7.0), EligibleDepartments: []string{"CSE", "IT"}},
			want:    false,
		},
		{
			name:    "branch match ignores case and whitespace on both sides",
			student: models.Student{CGPA: models.NewDecimal(9.0), Branch: "  cse "},
			drive:   models.Drive{MinCGPA: models.NewDecimal(7.0), EligibleDepartments: []string{" Cse "}},
			want:    true,
		},
		{
			name:    "unparseable drive cutoff admits nobody",
			student: models.Student{CGPA: models.NewDecimal(9.9), Branch: "CSE"},
			drive:   models.Drive{MinCGPA: models.Decimal{}, EligibleDepartments: []string{"CSE"}},
			want:    false,
		},
		{
			name:    "unparseable student cgpa is excluded",
			student: models.Student{CGPA: models.Decimal{}, Branch: "CSE"},
			drive:   models.Drive{MinCGPA: models.NewDecimal(0), EligibleDepartments: []string{"CSE"}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(&tt.student, &tt.drive))
		})
	}
}

func TestEligibleDrivesExcludesCompleted(t *testing.T) {
	student := models.Student{CGPA: models.NewDecimal(9.0), Branch: "CSE"}
	drives := []models.Drive{
		{JobID: "acme_dev", MinCGPA: models.NewDecimal(8.0), EligibleDepartments: []string{"CSE"}},
		{JobID: "globex_dev", MinCGPA: models.NewDecimal(8.0), EligibleDepartments: []string{"CSE"}, Completed: true},
		{JobID: "initech_dev", MinCGPA: models.NewDecimal(9.5), EligibleDepartments: []string{"CSE"}},
	}

	eligible := EligibleDrives(&student, drives)
	assert.Len(t, eligible, 1)
	assert.Equal(t, "acme_dev", eligible[0].JobID)
}
