package model

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	Front      string    `gorm:"type:text;not null"`
	Back       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

type Quiz struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	Data       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type StudyPlan struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	ExamDate   *time.Time
	PlanJSON   string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}
