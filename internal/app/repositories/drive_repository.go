package repositories

import (
	"context"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/docstore"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
)

// DriveRepository handles data access for the companies collection
type DriveRepository struct {
	store *docstore.Store
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(store *docstore.Store) *DriveRepository {
	return &DriveRepository{store: store}
}

// GetAll returns every drive record
func (r *DriveRepository) GetAll(_ context.Context) ([]models.Drive, error) {
	return docstore.Load[models.Drive](r.store, docstore.CollectionCompanies)
}

// GetByID returns the drive with the given stable identifier. Records
// written before stable identifiers were issued carry only a job slug,
// so the slug is accepted as a fallback match.
func (r *DriveRepository) GetByID(ctx context.Context, id string) (*models.Drive, error) {
	drives, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range drives {
		if drives[i].ID == id {
			return &drives[i], nil
		}
	}
	for i := range drives {
		if drives[i].ID == "" && drives[i].JobID == id {
			return &drives[i], nil
		}
	}
	return nil, apperrors.ErrDriveNotFound
}

// GetByJobID returns the drive with the given job slug
func (r *DriveRepository) GetByJobID(ctx context.Context, jobID string) (*models.Drive, error) {
	drives, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range drives {
		if drives[i].JobID == jobID {
			return &drives[i], nil
		}
	}
	return nil, apperrors.ErrDriveNotFound
}

// Create appends a new drive after enforcing job slug uniqueness
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	return r.store.WithLock(docstore.CollectionCompanies, func() error {
		drives, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range drives {
			if drives[i].JobID == drive.JobID {
				return apperrors.ErrJobIDAlreadyExists
			}
		}
		drives = append(drives, *drive)
		return r.store.Save(docstore.CollectionCompanies, drives)
	})
}

// Update atomically applies fn to the drive with the given stable
// identifier and persists the whole collection
func (r *DriveRepository) Update(ctx context.Context, id string, fn func(*models.Drive) error) (*models.Drive, error) {
	var updated models.Drive
	err := r.store.WithLock(docstore.CollectionCompanies, func() error {
		drives, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range drives {
			if !r.matches(&drives[i], id) {
				continue
			}
			if err := fn(&drives[i]); err != nil {
				return err
			}
			updated = drives[i]
			return r.store.Save(docstore.CollectionCompanies, drives)
		}
		return apperrors.ErrDriveNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the drive with the given stable identifier
func (r *DriveRepository) Delete(ctx context.Context, id string) error {
	return r.store.WithLock(docstore.CollectionCompanies, func() error {
		drives, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range drives {
			if r.matches(&drives[i], id) {
				drives = append(drives[:i], drives[i+1:]...)
				return r.store.Save(docstore.CollectionCompanies, drives)
			}
		}
		return apperrors.ErrDriveNotFound
	})
}

func (r *DriveRepository) matches(d *models.Drive, id string) bool {
	if d.ID == id {
		return true
	}
	return d.ID == "" && d.JobID == id
}
