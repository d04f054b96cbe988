package dto

import "github.com/anvesh/placementcell/internal/app/models"

// CreateNotificationRequest announces a round for an existing drive
type CreateNotificationRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	Venue       string `json:"venue" binding:"required"`
	Round       string `json:"round" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description" binding:"required"`
	MeetingLink string `json:"meetingLink"`
}

// NotificationResponse represents a round announcement
type NotificationResponse struct {
	CompanyName string `json:"companyName"`
	JobID       string `json:"jobId"`
	Role        string `json:"role"`
	Venue       string `json:"venue"`
	Round       string `json:"round"`
	Time        string `json:"time"`
	Description string `json:"description"`
	MeetingLink string `json:"meetingLink,omitempty"`
}

// NotificationListResponse represents the announcement feed
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// FromNotification maps a stored notification to its API representation
func FromNotification(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		CompanyName: n.CompanyName,
		JobID:       n.JobID,
		Role:        n.Role,
		Venue:       n.Venue,
		Round:       n.Round,
		Time:        n.Time,
		Description: n.Description,
		MeetingLink: n.MeetingLink,
	}
}
