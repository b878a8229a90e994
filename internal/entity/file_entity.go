package entity

import (
	"time"

	"github.com/google/uuid"
)

// File is immutable once created. ExtractedText feeds the notebook context
// in storage (created_at) order.
type File struct {
	Id            uuid.UUID
	NotebookId    uuid.UUID
	StoragePath   string
	ExtractedText string
	CreatedAt     time.Time
}
