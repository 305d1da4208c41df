package notes

import (
	"context"

	"github.com/dmitrijs2005/cryptonote/internal/client/models"
)

// Repository describes CRUD operations for sealed note records.
type Repository interface {
	// Insert stores a new record and assigns its ID.
	Insert(ctx context.Context, rec *models.NoteRecord) error

	// Save replaces every column of an existing record.
	Save(ctx context.Context, rec *models.NoteRecord) error

	// Update writes only the non-nil columns.
	Update(ctx context.Context, id int64, title, contents, date *string) error

	// GetAll returns every record ordered by ID.
	GetAll(ctx context.Context) ([]models.NoteRecord, error)

	GetByID(ctx context.Context, id int64) (*models.NoteRecord, error)

	Delete(ctx context.Context, id int64) error
}
