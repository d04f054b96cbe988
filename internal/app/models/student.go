package models

import "encoding/json"

// Student is the wire record stored in the students collection. Field
// names are the contract with existing data files and must not change.
type Student struct {
	StudentID       string                     `json:"student_id"` // Canonical unique identifier
	Name            string                     `json:"name"`
	Email           string                     `json:"email"`
	Password        string                     `json:"password"` // One-way credential digest, never the raw credential
	CGPA            Decimal                    `json:"cgpa"`
	Branch          string                     `json:"branch"`
	Applications    []string                   `json:"applications"` // Company names applied to, insertion order
	SelectedCompany string                     `json:"selected_company,omitempty"`
	Selected        []string                   `json:"selected,omitempty"`   // Job IDs the student was selected for
	Shortlists      map[string]map[string]bool `json:"shortlists,omitempty"` // job_id -> round -> cleared
	Resume          string                     `json:"resume,omitempty"`
	ProfilePic      string                     `json:"profile_pic,omitempty"`
}

// UnmarshalJSON normalizes the legacy dual identifier: older records
// carry the student identifier under "id" instead of "student_id".
// Either key is accepted on read; only the canonical key is written.
func (s *Student) UnmarshalJSON(data []byte) error {
	type studentAlias Student
	aux := struct {
		*studentAlias
		LegacyID string `json:"id"`
	}{studentAlias: (*studentAlias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if s.StudentID == "" {
		s.StudentID = aux.LegacyID
	}
	return nil
}

// HasApplied reports whether the student already applied to the company
func (s *Student) HasApplied(companyName string) bool {
	for _, name := range s.Applications {
		if name == companyName {
			return true
		}
	}
	return false
}

// MarkShortlisted records a cleared round for a job. Returns false when
// the flag was already set.
func (s *Student) MarkShortlisted(jobID, round string) bool {
	if s.Shortlists == nil {
		s.Shortlists = make(map[string]map[string]bool)
	}
	if s.Shortlists[jobID] == nil {
		s.Shortlists[jobID] = make(map[string]bool)
	}
	if s.Shortlists[jobID][round] {
		return false
	}
	s.Shortlists[jobID][round] = true
	return true
}

// MarkSelected appends a job ID to the selected list. Returns false
// when the job ID was already present.
func (s *Student) MarkSelected(jobID string) bool {
	for _, id := range s.Selected {
		if id == jobID {
			return false
		}
	}
	s.Selected = append(s.Selected, jobID)
	return true
}

// IsPlaced reports whether the student has any positive outcome on record
func (s *Student) IsPlaced() bool {
	return len(s.Selected) > 0 || s.SelectedCompany != ""
}
