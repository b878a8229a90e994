package unitofwork

import (
	"context"

	"ai-study-notebook-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NotebookRepository() contract.NotebookRepository
	NoteRepository() contract.NoteRepository
	FileRepository() contract.FileRepository
	FlashcardRepository() contract.FlashcardRepository
	QuizRepository() contract.QuizRepository
	StudyPlanRepository() contract.StudyPlanRepository
}
