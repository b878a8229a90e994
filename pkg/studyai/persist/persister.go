package persist

import (
	"context"
	"time"

	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/repository/specification"
	"ai-study-notebook-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Raw flashcard output is stored as one bulk row until the client parses
// card pairs out of it.
const flashcardBulkFront = "BULK_JSON"

// Persister stores generation results against the originating notebook.
// Write failures propagate; they are never swallowed.
type Persister struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPersister(uowFactory unitofwork.RepositoryFactory) *Persister {
	return &Persister{
		uowFactory: uowFactory,
	}
}

// SaveSummary updates the main note's summary field if the note exists.
// Without a note there is nothing to attach the summary to, so this is a
// no-op; the caller still returns the summary to the client.
func (p *Persister) SaveSummary(ctx context.Context, notebookId uuid.UUID, summary string) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByNotebookID{NotebookID: notebookId})
	if err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to load note", err)
	}
	if note == nil {
		return nil
	}

	now := time.Now()
	note.AiSummary = &summary
	note.UpdatedAt = &now
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to store summary", err)
	}
	return nil
}

// SaveFlashcards appends a new flashcard row; prior generations are kept.
func (p *Persister) SaveFlashcards(ctx context.Context, notebookId uuid.UUID, raw string) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	flashcard := &entity.Flashcard{
		Id:         uuid.New(),
		NotebookId: notebookId,
		Front:      flashcardBulkFront,
		Back:       raw,
		CreatedAt:  time.Now(),
	}
	if err := uow.FlashcardRepository().Create(ctx, flashcard); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to store flashcards", err)
	}
	return nil
}

func (p *Persister) SaveQuiz(ctx context.Context, notebookId uuid.UUID, raw string) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	quiz := &entity.Quiz{
		Id:         uuid.New(),
		NotebookId: notebookId,
		Data:       raw,
		CreatedAt:  time.Now(),
	}
	if err := uow.QuizRepository().Create(ctx, quiz); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to store quiz", err)
	}
	return nil
}

func (p *Persister) SaveStudyPlan(ctx context.Context, notebookId uuid.UUID, examDate *time.Time, raw string) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	plan := &entity.StudyPlan{
		Id:         uuid.New(),
		NotebookId: notebookId,
		ExamDate:   examDate,
		PlanJSON:   raw,
		CreatedAt:  time.Now(),
	}
	if err := uow.StudyPlanRepository().Create(ctx, plan); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to store study plan", err)
	}
	return nil
}
