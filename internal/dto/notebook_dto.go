package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

type UpdateNotebookRequest struct {
	Id          uuid.UUID
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

type NotebookResponse struct {
	Id          uuid.UUID  `json:"id"`
	UserId      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type UpsertNoteRequest struct {
	NotebookId uuid.UUID `json:"notebook_id" validate:"required"`
	Content    string    `json:"content"`
}

type NoteResponse struct {
	Id         uuid.UUID `json:"id"`
	NotebookId uuid.UUID `json:"notebook_id"`
	Content    string    `json:"content"`
	AiSummary  *string   `json:"ai_summary"`
}
