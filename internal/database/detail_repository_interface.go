package database

import (
	"context"

	"github.com/ocluk/caolan/internal/models"
)

// DetailReader defines read operations for details.
type DetailReader interface {
	GetAllDetails(ctx context.Context) ([]*models.Detail, error)
	GetDetailByID(ctx context.Context, id int64) (*models.Detail, error)
}

// DetailWriter defines write operations for details.
type DetailWriter interface {
	CreateDetail(ctx context.Context, name, address, dob, telephone string) (*models.Detail, error)
	UpdateDetail(ctx context.Context, id int64, name, address, dob, telephone string) (bool, error)
	DeleteDetail(ctx context.Context, id int64) (bool, error)
}

// DetailRepository combines all detail-related operations.
type DetailRepository interface {
	DetailReader
	DetailWriter
}
