// Package repositories implements data access over the document store.
// Each repository owns one collection and serializes its read-modify-
// write cycles through the store's per-collection lock.
package repositories

import (
	"github.com/anvesh/placementcell/internal/docstore"
)

// Repositories is a container for all repository instances
type Repositories struct {
	Student      *StudentRepository
	Drive        *DriveRepository
	Notification *NotificationRepository
	Query        *QueryRepository
	Response     *ResponseRepository
}

// NewRepositories creates all repositories over a shared store
func NewRepositories(store *docstore.Store) *Repositories {
	return &Repositories{
		Student:      NewStudentRepository(store),
		Drive:        NewDriveRepository(store),
		Notification: NewNotificationRepository(store),
		Query:        NewQueryRepository(store),
		Response:     NewResponseRepository(store),
	}
}
