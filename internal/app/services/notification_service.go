package services

import (
	"context"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/repositories"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
)

// NotificationService handles the staff announcement feed
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	driveRepo        *repositories.DriveRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo *repositories.NotificationRepository, driveRepo *repositories.DriveRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		driveRepo:        driveRepo,
	}
}

// Create announces a round for an existing drive. Company name and
// role are denormalized from the drive so the feed stays readable even
// if the drive is later deleted.
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if !models.ValidRound(req.Round) {
		return nil, apperrors.ErrUnknownRound
	}

	drive, err := s.driveRepo.GetByJobID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		CompanyName: drive.Name,
		JobID:       drive.JobID,
		Role:        drive.Role,
		Venue:       req.Venue,
		Round:       req.Round,
		Time:        req.Time,
		Description: req.Description,
		MeetingLink: req.MeetingLink,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// List returns the full announcement feed in insertion order
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.notificationRepo.GetAll(ctx)
}
