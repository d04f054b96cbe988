package dto

// ShortlistRequest records a cleared round for a student on a drive
type ShortlistRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	JobID     string `json:"jobId" binding:"required"`
	Round     string `json:"round" binding:"required"`
}

// SelectRequest records a final selection for a student on a drive.
// The round is the one being cleared by the selection.
type SelectRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	JobID     string `json:"jobId" binding:"required"`
	Round     string `json:"round" binding:"required"`
}

// ShortlistResponse reports the updated progress of a student on a drive
type ShortlistResponse struct {
	StudentID string          `json:"studentId"`
	JobID     string          `json:"jobId"`
	Round     string          `json:"round,omitempty"`
	Changed   bool            `json:"changed"`
	Student   StudentResponse `json:"student"`
}

// ShortlistEntryResponse is one row of a per-drive progress listing
type ShortlistEntryResponse struct {
	StudentID string          `json:"studentId"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Rounds    map[string]bool `json:"rounds"`
	Selected  bool            `json:"selected"`
}

// DriveShortlistResponse lists student progress for a single drive
type DriveShortlistResponse struct {
	JobID   string                   `json:"jobId"`
	Entries []ShortlistEntryResponse `json:"entries"`
	Total   int                      `json:"total"`
}
