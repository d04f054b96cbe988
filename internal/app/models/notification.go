package models

// Notification is a round announcement broadcast by placement staff,
// stored in the notifications collection. All students see every
// notification; there is no per-student fanout. Field names are the
// wire contract with existing data files.
type Notification struct {
	CompanyName string `json:"company_name"`
	JobID       string `json:"job_id"`
	Role        string `json:"role"`
	Venue       string `json:"venue"`
	Round       string `json:"round"`
	Time        string `json:"time"`
	Description string `json:"description"`
	MeetingLink string `json:"meeting_link"`
}
