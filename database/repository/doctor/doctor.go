package doctorRepo

import (
	"context"
	"errors"

	"dermacare/models"
)

// ErrNotFound is returned when no doctor matches the given ID.
var ErrNotFound = errors.New("doctor not found")

// Repository defines data access for doctor profiles. The scheduling core
// only ever reads doctors; profile management lives elsewhere.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
}
