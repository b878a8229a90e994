package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is the single "main note" of a notebook. Created on first write,
// updated in place afterwards.
type Note struct {
	Id         uuid.UUID
	NotebookId uuid.UUID
	Content    string
	AiSummary  *string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
