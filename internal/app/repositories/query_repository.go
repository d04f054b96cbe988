package repositories

import (
	"context"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/docstore"
)

// QueryRepository handles data access for the queries collection
type QueryRepository struct {
	store *docstore.Store
}

// NewQueryRepository creates a new query repository
func NewQueryRepository(store *docstore.Store) *QueryRepository {
	return &QueryRepository{store: store}
}

// GetAll returns every query in insertion order
func (r *QueryRepository) GetAll(_ context.Context) ([]models.Query, error) {
	return docstore.Load[models.Query](r.store, docstore.CollectionQueries)
}

// GetByStudent returns the queries raised by one student
func (r *QueryRepository) GetByStudent(ctx context.Context, studentID string) ([]models.Query, error) {
	queries, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Query, 0)
	for _, q := range queries {
		if q.StudentID == studentID {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// Create appends a new query
func (r *QueryRepository) Create(ctx context.Context, query *models.Query) error {
	return r.store.WithLock(docstore.CollectionQueries, func() error {
		queries, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		queries = append(queries, *query)
		return r.store.Save(docstore.CollectionQueries, queries)
	})
}
