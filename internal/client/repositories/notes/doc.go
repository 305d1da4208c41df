// Package notes persists sealed note records in the local SQLite database.
//
// The repository never sees plaintext: every text column holds a base64
// envelope produced by the note cipher. Missing rows are reported as
// common.ErrorNotFound.
//
// Typical Usage
//
//	repo := notes.NewSQLiteRepository(db)
//	_ = repo.Insert(ctx, rec)
//	list, _ := repo.GetAll(ctx)
//	one, _ := repo.GetByID(ctx, rec.ID)
//	_ = repo.Delete(ctx, rec.ID)
package notes
