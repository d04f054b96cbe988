package repositories

import (
	"context"
	"strings"

	"github.com/anvesh/placementcell/internal/app/models"
	"github.com/anvesh/placementcell/internal/docstore"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
)

// StudentRepository handles data access for the students collection
type StudentRepository struct {
	store *docstore.Store
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(store *docstore.Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// GetAll returns every student record
func (r *StudentRepository) GetAll(_ context.Context) ([]models.Student, error) {
	return docstore.Load[models.Student](r.store, docstore.CollectionStudents)
}

// GetByID returns the student with the given identifier
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	students, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].StudentID == studentID {
			return &students[i], nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// GetByEmail returns the student with the given email, compared
// case-insensitively
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	students, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if strings.EqualFold(students[i].Email, email) {
			return &students[i], nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// Create appends a new student after enforcing identifier and email
// uniqueness. The duplicate check and the append run under the
// collection lock as one cycle.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.store.WithLock(docstore.CollectionStudents, func() error {
		students, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range students {
			if students[i].StudentID == student.StudentID {
				return apperrors.ErrStudentIDAlreadyExists
			}
			if strings.EqualFold(students[i].Email, student.Email) {
				return apperrors.ErrEmailAlreadyExists
			}
		}
		students = append(students, *student)
		return r.store.Save(docstore.CollectionStudents, students)
	})
}

// Update atomically applies fn to the student with the given identifier
// and persists the whole collection. fn returning an error abandons the
// write.
func (r *StudentRepository) Update(ctx context.Context, studentID string, fn func(*models.Student) error) (*models.Student, error) {
	var updated models.Student
	err := r.store.WithLock(docstore.CollectionStudents, func() error {
		students, err := r.GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range students {
			if students[i].StudentID != studentID {
				continue
			}
			if err := fn(&students[i]); err != nil {
				return err
			}
			updated = students[i]
			return r.store.Save(docstore.CollectionStudents, students)
		}
		return apperrors.ErrStudentNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
