package services

import (
	"strings"

	"github.com/anvesh/placementcell/internal/app/models"
)

// Eligible reports whether a student may apply to a drive. The CGPA
// cutoff is inclusive and the branch match ignores case and surrounding
// whitespace. A drive whose cutoff did not parse is treated as open to
// nobody rather than everybody.
func Eligible(student *models.Student, drive *models.Drive) bool {
	if !drive.MinCGPA.Valid || !student.CGPA.Valid {
		return false
	}
	if student.CGPA.Value < drive.MinCGPA.Value {
		return false
	}

	branch := strings.ToUpper(strings.TrimSpace(student.Branch))
	for _, dept := range drive.EligibleDepartments {
		if strings.ToUpper(strings.TrimSpace(dept)) == branch {
			return true
		}
	}
	return false
}

// EligibleDrives filters a drive list down to those the student may
// apply to. Completed drives are excluded.
func EligibleDrives(student *models.Student, drives []models.Drive) []models.Drive {
	eligible := make([]models.Drive, 0)
	for i := range drives {
		if drives[i].Completed {
			continue
		}
		if Eligible(student, &drives[i]) {
			eligible = append(eligible, drives[i])
		}
	}
	return eligible
}
