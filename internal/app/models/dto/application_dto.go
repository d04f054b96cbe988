package dto

// ApplyRequest represents an application to a placement drive
type ApplyRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
}

// ApplyResponse reports the outcome of an application attempt. Applied
// is false when the student had already applied to the company.
type ApplyResponse struct {
	CompanyName string          `json:"companyName"`
	Applied     bool            `json:"applied"`
	Student     StudentResponse `json:"student"`
}
