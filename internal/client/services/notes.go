package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cryptonote/internal/client/models"
	"github.com/dmitrijs2005/cryptonote/internal/client/repositories/notes"
	"github.com/dmitrijs2005/cryptonote/internal/dbx"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
)

// NoteService drives the note lifecycle. Fields are sealed before they reach
// the repository and opened after they leave it.
type NoteService interface {
	// Create stores a note titled models.DefaultNoteTitle with an empty body
	// and the current date.
	Create(ctx context.Context) (*models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	// Save inserts n when n.ID is zero and replaces it otherwise.
	Save(ctx context.Context, n *models.Note) error
	// Update re-seals only the patched fields and refreshes the date.
	Update(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
}

type noteService struct {
	db     *sql.DB
	cipher *NoteCipher
	log    logging.Logger
	now    func() time.Time
}

func NewNoteService(db *sql.DB, cipher *NoteCipher, log logging.Logger) NoteService {
	return &noteService{db: db, cipher: cipher, log: log, now: time.Now}
}

func (s *noteService) repo(db dbx.DBTX) notes.Repository {
	return notes.NewSQLiteRepository(db)
}

func (s *noteService) open(ctx context.Context, rec models.NoteRecord) (models.Note, error) {
	n, err := s.cipher.OpenNote(ctx, rec)
	if err != nil {
		s.log.Error(ctx, "note failed to open", "id", rec.ID, "error", err)
		return models.Note{}, fmt.Errorf("%w: note %d: %w", ErrDataUnavailable, rec.ID, err)
	}
	return n, nil
}

func (s *noteService) Create(ctx context.Context) (*models.Note, error) {
	n := &models.Note{
		Title: models.DefaultNoteTitle,
		Date:  models.FormatDate(s.now()),
	}
	if err := s.Save(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	rows, err := s.repo(s.db).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notes: %w", err)
	}

	result := make([]models.Note, 0, len(rows))
	for _, row := range rows {
		n, err := s.open(ctx, row)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func (s *noteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	rec, err := s.repo(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving note: %w", err)
	}
	n, err := s.open(ctx, *rec)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *noteService) Save(ctx context.Context, n *models.Note) error {
	rec, err := s.cipher.SealNote(ctx, *n)
	if err != nil {
		return fmt.Errorf("encryption error: %w", err)
	}

	repo := s.repo(s.db)
	if n.ID == 0 {
		if err := repo.Insert(ctx, &rec); err != nil {
			return fmt.Errorf("saving error: %w", err)
		}
		n.ID = rec.ID
		s.log.Debug(ctx, "note created", "id", n.ID)
		return nil
	}

	if err := repo.Save(ctx, &rec); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	s.log.Debug(ctx, "note saved", "id", n.ID)
	return nil
}

func (s *noteService) Update(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error) {
	var sealedTitle, sealedContents *string
	if patch.Title != nil {
		v, err := s.cipher.EncryptField(ctx, *patch.Title)
		if err != nil {
			return nil, fmt.Errorf("encryption error: %w", err)
		}
		sealedTitle = &v
	}
	if patch.Contents != nil {
		v, err := s.cipher.EncryptField(ctx, *patch.Contents)
		if err != nil {
			return nil, fmt.Errorf("encryption error: %w", err)
		}
		sealedContents = &v
	}

	var sealedDate *string
	if !patch.Empty() {
		v, err := s.cipher.EncryptField(ctx, models.FormatDate(s.now()))
		if err != nil {
			return nil, fmt.Errorf("encryption error: %w", err)
		}
		sealedDate = &v
	}

	var rec *models.NoteRecord
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if sealedDate != nil {
			if err := repo.Update(ctx, id, sealedTitle, sealedContents, sealedDate); err != nil {
				return err
			}
		}
		var err error
		rec, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	n, err := s.open(ctx, *rec)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	s.log.Debug(ctx, "note deleted", "id", id)
	return nil
}
