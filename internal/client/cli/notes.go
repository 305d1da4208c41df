package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cryptonote/internal/client/models"
	"github.com/dmitrijs2005/cryptonote/internal/client/services"
	"github.com/dmitrijs2005/cryptonote/internal/common"
	"github.com/fatih/color"
)

// report logs err and prints a message that does not leak crypto detail.
func (a *App) report(ctx context.Context, id int64, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		failure(fmt.Sprintf("Note #%d not found", id))
	case errors.Is(err, services.ErrDataUnavailable):
		failure("Data unavailable")
	default:
		a.log.Error(ctx, "note command failed", "id", id, "error", err)
		failure("Something went wrong, see the log for details")
	}
	return err
}

// NewNote creates a note and lets the user fill it in. An empty title keeps
// the default one.
func (a *App) NewNote(ctx context.Context) error {
	n, err := a.noteService.Create(ctx)
	if err != nil {
		return a.report(ctx, 0, err)
	}

	title, err := getSimpleText(a.reader, "Title (Enter for \""+n.Title+"\")", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Text", a.out)
	if err != nil {
		return err
	}

	var patch models.NotePatch
	if title != "" {
		patch.Title = &title
	}
	if body != "" {
		patch.Contents = &body
	}
	if !patch.Empty() {
		if _, err := a.noteService.Update(ctx, n.ID, patch); err != nil {
			return a.report(ctx, n.ID, err)
		}
	}

	success(fmt.Sprintf("Note #%d created", n.ID))
	return nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.noteService.List(ctx)
	if err != nil {
		return a.report(ctx, 0, err)
	}
	if len(list) == 0 {
		hint("No notes yet. Type " + color.YellowString("new") + " to create one.")
		return nil
	}
	for _, n := range list {
		printlnFn(fmt.Sprintf("%s  %s  %s", color.YellowString("#%d", n.ID), color.CyanString("%s", n.Date), n.Title))
	}
	return nil
}

func (a *App) Show(ctx context.Context, id int64) error {
	n, err := a.noteService.Get(ctx, id)
	if err != nil {
		return a.report(ctx, id, err)
	}
	printlnFn(color.YellowString("#%d ", n.ID) + n.Title)
	printlnFn(color.CyanString("%s", n.Date))
	if strings.TrimSpace(n.Contents) != "" {
		printlnFn(n.Contents)
	}
	return nil
}

// Edit replaces the body of a note.
func (a *App) Edit(ctx context.Context, id int64) error {
	if _, err := a.noteService.Get(ctx, id); err != nil {
		return a.report(ctx, id, err)
	}
	body, err := getMultiline(a.reader, "New text", a.out)
	if err != nil {
		return err
	}
	if _, err := a.noteService.Update(ctx, id, models.NotePatch{Contents: &body}); err != nil {
		return a.report(ctx, id, err)
	}
	success(fmt.Sprintf("Note #%d saved", id))
	return nil
}

// Rename changes the title of a note. An empty answer cancels.
func (a *App) Rename(ctx context.Context, id int64) error {
	n, err := a.noteService.Get(ctx, id)
	if err != nil {
		return a.report(ctx, id, err)
	}
	title, err := getSimpleText(a.reader, "New title (Enter to keep \""+n.Title+"\")", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return nil
	}
	if _, err := a.noteService.Update(ctx, id, models.NotePatch{Title: &title}); err != nil {
		return a.report(ctx, id, err)
	}
	success(fmt.Sprintf("Note #%d renamed", id))
	return nil
}

func (a *App) Delete(ctx context.Context, id int64) error {
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete note #%d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		hint("Cancelled")
		return nil
	}
	if err := a.noteService.Delete(ctx, id); err != nil {
		return a.report(ctx, id, err)
	}
	success(fmt.Sprintf("Note #%d deleted", id))
	return nil
}
