package repositories

import (
	"context"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/docstore"
)

// NotificationRepository handles data access for the notifications collection
type NotificationRepository struct {
	store *docstore.Store
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(store *docstore.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// GetAll returns every notification in insertion order
func (r *NotificationRepository) GetAll(_ context.Context) ([]models.Notification, error) {
	return docstore.Load[models.Notification](r.store, docstore.CollectionNotifications)
}

// Create appends a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.store.WithLock(docstore.CollectionNotifications, func() error {
		notifications, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		notifications = append(notifications, *notification)
		return r.store.Save(docstore.CollectionNotifications, notifications)
	})
}
