package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/cryptonote/internal/client/models"
	"github.com/dmitrijs2005/cryptonote/internal/client/services"
	"github.com/dmitrijs2005/cryptonote/internal/common"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
	"github.com/fatih/color"
)

// captureOutput redirects printlnFn into a buffer for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var (
		mu  sync.Mutex
		buf bytes.Buffer
	)
	origPrint, origNoColor := printlnFn, color.NoColor
	color.NoColor = true
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Fprintln(&buf, a...)
	}
	t.Cleanup(func() {
		printlnFn = origPrint
		color.NoColor = origNoColor
	})
	return &buf
}

func silenceOutput(t *testing.T) {
	t.Helper()
	_ = captureOutput(t)
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// stubInputs replaces the prompt helpers with canned answers consumed in order.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline

	next := func(q *[]string) (string, error) {
		if len(*q) == 0 {
			return "", io.EOF
		}
		v := (*q)[0]
		*q = (*q)[1:]
		return v, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(&texts) }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(&texts) }
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		v, err := next(&passwords)
		return []byte(v), err
	}
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})
}

func newTestApp(as services.AuthService, ns services.NoteService) *App {
	return NewApp(as, ns, logging.Discard(), strings.NewReader(""), io.Discard)
}

type fakeAuth struct {
	state services.RegistrationState

	regPass []byte
	regErr  error

	authPass []byte
	authOK   bool
	authErr  error
}

func (f *fakeAuth) State(context.Context) (services.RegistrationState, error) { return f.state, nil }
func (f *fakeAuth) IsRegistered(context.Context) (bool, error) {
	return f.state == services.Registered, nil
}
func (f *fakeAuth) Register(_ context.Context, pass []byte) error {
	f.regPass = append([]byte(nil), pass...)
	if f.regErr == nil {
		f.state = services.Registered
	}
	return f.regErr
}
func (f *fakeAuth) Authenticate(_ context.Context, pass []byte) (bool, error) {
	f.authPass = append([]byte(nil), pass...)
	return f.authOK, f.authErr
}

type fakeNotes struct {
	notes  map[int64]models.Note
	nextID int64

	patches []models.NotePatch
	deleted []int64
	err     error
}

func newFakeNotes() *fakeNotes {
	return &fakeNotes{notes: map[int64]models.Note{}, nextID: 1}
}

func (f *fakeNotes) Create(context.Context) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	n := models.Note{ID: f.nextID, Title: models.DefaultNoteTitle, Date: "2024-01-01 00:00:00"}
	f.notes[n.ID] = n
	f.nextID++
	return &n, nil
}

func (f *fakeNotes) List(context.Context) ([]models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Note, 0, len(f.notes))
	for id := int64(1); id < f.nextID; id++ {
		if n, ok := f.notes[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotes) Get(_ context.Context, id int64) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, ok := f.notes[id]
	if !ok {
		return nil, fmt.Errorf("error retrieving note: %w", common.ErrorNotFound)
	}
	return &n, nil
}

func (f *fakeNotes) Save(_ context.Context, n *models.Note) error {
	if f.err != nil {
		return f.err
	}
	f.notes[n.ID] = *n
	return nil
}

func (f *fakeNotes) Update(_ context.Context, id int64, p models.NotePatch) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, ok := f.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	f.patches = append(f.patches, p)
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Contents != nil {
		n.Contents = *p.Contents
	}
	f.notes[id] = n
	return &n, nil
}

func (f *fakeNotes) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.notes[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.notes, id)
	f.deleted = append(f.deleted, id)
	return nil
}
