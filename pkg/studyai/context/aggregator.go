package context

import (
	"context"
	"strings"

	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/repository/specification"
	"ai-study-notebook-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Aggregator assembles the grounding text for a notebook: the main note
// plus all extracted file texts, each section labeled so the generation
// backend can tell them apart.
type Aggregator struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAggregator(uowFactory unitofwork.RepositoryFactory) *Aggregator {
	return &Aggregator{
		uowFactory: uowFactory,
	}
}

// BuildNotebookContext verifies ownership and concatenates the notebook's
// content into a single blob. An absent notebook and a notebook owned by
// someone else both return NotFound, so existence is never leaked.
// No length capping is applied; truncation policy is an open question.
func (a *Aggregator) BuildNotebookContext(ctx context.Context, notebookId, requesterId uuid.UUID) (string, error) {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: notebookId})
	if err != nil {
		return "", apperror.Wrap(apperror.KindPersistenceError, "failed to load notebook", err)
	}
	if notebook == nil || notebook.UserId != requesterId {
		return "", apperror.New(apperror.KindNotFound, "notebook not found")
	}

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByNotebookID{NotebookID: notebookId})
	if err != nil {
		return "", apperror.Wrap(apperror.KindPersistenceError, "failed to load note", err)
	}
	noteText := ""
	if note != nil {
		noteText = note.Content
	}

	files, err := uow.FileRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebookId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return "", apperror.Wrap(apperror.KindPersistenceError, "failed to load files", err)
	}
	fileTexts := make([]string, 0, len(files))
	for _, f := range files {
		fileTexts = append(fileTexts, f.ExtractedText)
	}

	description := ""
	if notebook.Description != nil {
		description = *notebook.Description
	}

	var blob strings.Builder
	blob.WriteString("Notebook: " + notebook.Title + "\n")
	blob.WriteString("Description: " + description + "\n\n")
	blob.WriteString("Notes:\n" + noteText + "\n\n")
	blob.WriteString("Files:\n")
	blob.WriteString(strings.Join(fileTexts, "\n\n"))

	return blob.String(), nil
}
