package models

import (
	"strings"
	"time"
)

// DriveDateLayout is the on-disk format of date_of_drive
const DriveDateLayout = "2006-01-02"

// Drive is the wire record stored in the companies collection. The
// job_id slug is the foreign key from Student.Shortlists and must stay
// stable once issued; the id field is the stable identifier all
// mutations address (legacy tooling mutated drives by list position).
type Drive struct {
	ID                  string   `json:"id,omitempty"` // Stable generated identifier
	JobID               string   `json:"job_id"`
	Name                string   `json:"name"`
	Role                string   `json:"role"`
	Package             Decimal  `json:"package"`
	MinCGPA             Decimal  `json:"min_cgpa"`
	EligibleDepartments []string `json:"eligible_departments"`
	DateOfDrive         string   `json:"date_of_drive"`
	Completed           bool     `json:"completed"`
}

// GenerateJobID derives the deterministic job slug from a company name
// and role: lower-cased, spaces replaced with underscores, joined with
// an underscore. Two drives sharing name and role collide.
func GenerateJobID(companyName, role string) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	}
	return slug(companyName) + "_" + slug(role)
}

// DriveYear returns the calendar year of the drive date, if parseable
func (d *Drive) DriveYear() (int, bool) {
	t, err := time.Parse(DriveDateLayout, d.DateOfDrive)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}
