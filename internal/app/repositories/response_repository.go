package repositories

import (
	"context"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/docstore"
)

// ResponseRepository handles data access for the responses collection
type ResponseRepository struct {
	store *docstore.Store
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(store *docstore.Store) *ResponseRepository {
	return &ResponseRepository{store: store}
}

// GetAll returns every response in insertion order
func (r *ResponseRepository) GetAll(_ context.Context) ([]models.Response, error) {
	return docstore.Load[models.Response](r.store, docstore.CollectionResponses)
}

// GetByStudent returns the responses addressed to one student
func (r *ResponseRepository) GetByStudent(ctx context.Context, studentID string) ([]models.Response, error) {
	responses, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Response, 0)
	for _, resp := range responses {
		if resp.StudentID == studentID {
			filtered = append(filtered, resp)
		}
	}
	return filtered, nil
}

// Create appends a new response
func (r *ResponseRepository) Create(ctx context.Context, response *models.Response) error {
	return r.store.WithLock(docstore.CollectionResponses, func() error {
		responses, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		responses = append(responses, *response)
		return r.store.Save(docstore.CollectionResponses, responses)
	})
}
