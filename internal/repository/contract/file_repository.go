package contract

import (
	"context"

	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.File) error
	DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.File, error)
}
