package entity

import (
	"time"

	"github.com/google/uuid"
)

// Generated artifacts are append-only: new generations never overwrite
// prior ones.

type Flashcard struct {
	Id         uuid.UUID
	NotebookId uuid.UUID
	Front      string
	Back       string
	CreatedAt  time.Time
}

type Quiz struct {
	Id         uuid.UUID
	NotebookId uuid.UUID
	Data       string
	CreatedAt  time.Time
}

type StudyPlan struct {
	Id         uuid.UUID
	NotebookId uuid.UUID
	ExamDate   *time.Time
	PlanJSON   string
	CreatedAt  time.Time
}
