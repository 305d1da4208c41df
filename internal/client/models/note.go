package models

import "time"

// DefaultNoteTitle is the placeholder title of a freshly created note.
const DefaultNoteTitle = "New Note"

// DateLayout formats the note timestamp.
const DateLayout = time.DateTime

// Note is the decrypted, transient view of a NoteRecord.
type Note struct {
	ID       int64
	Title    string
	Contents string
	Date     string
}

// NotePatch carries the fields of a partial edit. Nil fields are left as they
// are, ciphertext included.
type NotePatch struct {
	Title    *string
	Contents *string
}

// Empty reports whether the patch changes nothing.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Contents == nil
}

// FormatDate renders t the way notes store their timestamp.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
