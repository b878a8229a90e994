package contract

import (
	"context"

	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FlashcardRepository interface {
	Create(ctx context.Context, flashcard *entity.Flashcard) error
	DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flashcard, error)
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *entity.Quiz) error
	DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error)
}

type StudyPlanRepository interface {
	Create(ctx context.Context, plan *entity.StudyPlan) error
	DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyPlan, error)
}
