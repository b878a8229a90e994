package dto

import "github.com/google/uuid"

type AIRequest struct {
	NotebookId *uuid.UUID `json:"notebook_id"`
	Text       string     `json:"text" validate:"required"`
}

type QuizRequest struct {
	NotebookId *uuid.UUID `json:"notebook_id"`
	Text       string     `json:"text" validate:"required"`
	Level      string     `json:"level"` // defaults to "medium"
	QType      string     `json:"qtype"` // defaults to "mix"
}

type StudyPlanRequest struct {
	NotebookId *uuid.UUID `json:"notebook_id"`
	Text       string     `json:"text" validate:"required"`
	ExamDate   *string    `json:"exam_date"` // ISO date (2006-01-02)
}

type ChatMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

type ChatRequest struct {
	NotebookId *uuid.UUID    `json:"notebook_id"`
	Messages   []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type FlashcardsResponse struct {
	FlashcardsRaw string `json:"flashcards_raw"`
}

type QuizResponse struct {
	QuizRaw string `json:"quiz_raw"`
}

type StudyPlanResponse struct {
	PlanRaw string `json:"plan_raw"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
