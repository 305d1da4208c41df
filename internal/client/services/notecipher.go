package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cryptonote/internal/client/models"
	"github.com/dmitrijs2005/cryptonote/internal/cryptox"
)

// NoteCipher seals note fields under the note key. Every field gets its own
// nonce and its own payload.
type NoteCipher struct {
	vault KeyVault
	alias string
}

func NewNoteCipher(vault KeyVault, params cryptox.Params) *NoteCipher {
	return &NoteCipher{vault: vault, alias: params.NoteKeyAlias}
}

// EncryptField seals text, creating the note key on first use.
func (c *NoteCipher) EncryptField(ctx context.Context, text string) (string, error) {
	payload, err := c.vault.EncryptUnder(ctx, c.alias, []byte(text))
	if err != nil {
		return "", fmt.Errorf("seal field: %w", err)
	}
	return payload, nil
}

// DecryptField opens a payload produced by EncryptField. It fails with
// keyvault.ErrKeyNotFound if no note key was ever created.
func (c *NoteCipher) DecryptField(ctx context.Context, payload string) (string, error) {
	plain, err := c.vault.DecryptUnder(ctx, c.alias, payload)
	if err != nil {
		return "", fmt.Errorf("open field: %w", err)
	}
	return string(plain), nil
}

// SealNote seals title, contents and date independently.
func (c *NoteCipher) SealNote(ctx context.Context, n models.Note) (models.NoteRecord, error) {
	rec := models.NoteRecord{ID: n.ID}
	var err error
	if rec.Title, err = c.EncryptField(ctx, n.Title); err != nil {
		return models.NoteRecord{}, fmt.Errorf("title: %w", err)
	}
	if rec.Contents, err = c.EncryptField(ctx, n.Contents); err != nil {
		return models.NoteRecord{}, fmt.Errorf("contents: %w", err)
	}
	if rec.Date, err = c.EncryptField(ctx, n.Date); err != nil {
		return models.NoteRecord{}, fmt.Errorf("date: %w", err)
	}
	return rec, nil
}

func (c *NoteCipher) OpenNote(ctx context.Context, rec models.NoteRecord) (models.Note, error) {
	n := models.Note{ID: rec.ID}
	var err error
	if n.Title, err = c.DecryptField(ctx, rec.Title); err != nil {
		return models.Note{}, fmt.Errorf("title: %w", err)
	}
	if n.Contents, err = c.DecryptField(ctx, rec.Contents); err != nil {
		return models.Note{}, fmt.Errorf("contents: %w", err)
	}
	if n.Date, err = c.DecryptField(ctx, rec.Date); err != nil {
		return models.Note{}, fmt.Errorf("date: %w", err)
	}
	return n, nil
}
