package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cryptonote/internal/client/models"
	"github.com/dmitrijs2005/cryptonote/internal/common"
	"github.com/dmitrijs2005/cryptonote/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.NoteRecord) error {
	query := `INSERT INTO notes (title, contents, date) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, rec.Title, rec.Contents, rec.Date)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get note id: %w", err)
	}
	rec.ID = id
	return nil
}

func (r *SQLiteRepository) Save(ctx context.Context, rec *models.NoteRecord) error {
	query := `UPDATE notes SET title = ?, contents = ?, date = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, rec.Title, rec.Contents, rec.Date, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to save note %d: %w", rec.ID, err)
	}
	return expectOne(res, rec.ID)
}

// Update leaves a column untouched when its argument is nil.
func (r *SQLiteRepository) Update(ctx context.Context, id int64, title, contents, date *string) error {
	query := `UPDATE notes SET
		title = COALESCE(?, title),
		contents = COALESCE(?, contents),
		date = COALESCE(?, date)
	WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nullable(title), nullable(contents), nullable(date), id)
	if err != nil {
		return fmt.Errorf("failed to update note %d: %w", id, err)
	}
	return expectOne(res, id)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.NoteRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, contents, date FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	result := []models.NoteRecord{}
	for rows.Next() {
		var rec models.NoteRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Contents, &rec.Date); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate note rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.NoteRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, contents, date FROM notes WHERE id = ?`, id)

	rec := &models.NoteRecord{}
	if err := row.Scan(&rec.ID, &rec.Title, &rec.Contents, &rec.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	return expectOne(res, id)
}

func expectOne(res sql.Result, id int64) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("note %d: %w", id, common.ErrorNotFound)
	}
	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
