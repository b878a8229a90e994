package service

import (
	"context"
	"time"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/logger"
	"ai-study-notebook-be/pkg/llm"
	studyctx "ai-study-notebook-be/pkg/studyai/context"
	"ai-study-notebook-be/pkg/studyai/persist"
	"ai-study-notebook-be/pkg/studyai/prompt"

	"github.com/google/uuid"
)

const (
	defaultQuizLevel = "medium"
	defaultQuizType  = "mix"
)

type IAiService interface {
	Summary(ctx context.Context, userId uuid.UUID, req *dto.AIRequest) (*dto.SummaryResponse, error)
	Flashcards(ctx context.Context, userId uuid.UUID, req *dto.AIRequest) (*dto.FlashcardsResponse, error)
	Quiz(ctx context.Context, userId uuid.UUID, req *dto.QuizRequest) (*dto.QuizResponse, error)
	StudyPlan(ctx context.Context, userId uuid.UUID, req *dto.StudyPlanRequest) (*dto.StudyPlanResponse, error)
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type aiService struct {
	provider   llm.LLMProvider
	aggregator *studyctx.Aggregator
	persister  *persist.Persister
	logger     logger.ILogger
}

func NewAiService(provider llm.LLMProvider, aggregator *studyctx.Aggregator, persister *persist.Persister, log logger.ILogger) IAiService {
	return &aiService{
		provider:   provider,
		aggregator: aggregator,
		persister:  persister,
		logger:     log,
	}
}

// generate runs the backend call and logs failures with the task name.
func (s *aiService) generate(ctx context.Context, task, promptText string) (string, error) {
	answer, err := s.provider.Generate(ctx, promptText)
	if err != nil {
		s.logger.Error("AiService", "Generation failed", map[string]interface{}{
			"task":  task,
			"error": err.Error(),
		})
		return "", err
	}
	return answer, nil
}

// buildContext resolves the optional notebook reference into a context blob.
// A nil notebook id yields an empty blob and skips persistence later on.
func (s *aiService) buildContext(ctx context.Context, userId uuid.UUID, notebookId *uuid.UUID) (string, error) {
	if notebookId == nil {
		return "", nil
	}
	return s.aggregator.BuildNotebookContext(ctx, *notebookId, userId)
}

func (s *aiService) Summary(ctx context.Context, userId uuid.UUID, req *dto.AIRequest) (*dto.SummaryResponse, error) {
	blob, err := s.buildContext(ctx, userId, req.NotebookId)
	if err != nil {
		return nil, err
	}

	answer, err := s.generate(ctx, "summary", prompt.Build(prompt.TaskSummary, blob, req.Text))
	if err != nil {
		return nil, err
	}

	if req.NotebookId != nil {
		if err := s.persister.SaveSummary(ctx, *req.NotebookId, answer); err != nil {
			return nil, err
		}
	}
	return &dto.SummaryResponse{Summary: answer}, nil
}

func (s *aiService) Flashcards(ctx context.Context, userId uuid.UUID, req *dto.AIRequest) (*dto.FlashcardsResponse, error) {
	blob, err := s.buildContext(ctx, userId, req.NotebookId)
	if err != nil {
		return nil, err
	}

	answer, err := s.generate(ctx, "flashcards", prompt.Build(prompt.TaskFlashcards, blob, req.Text))
	if err != nil {
		return nil, err
	}

	if req.NotebookId != nil {
		if err := s.persister.SaveFlashcards(ctx, *req.NotebookId, answer); err != nil {
			return nil, err
		}
	}
	return &dto.FlashcardsResponse{FlashcardsRaw: answer}, nil
}

func (s *aiService) Quiz(ctx context.Context, userId uuid.UUID, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	blob, err := s.buildContext(ctx, userId, req.NotebookId)
	if err != nil {
		return nil, err
	}

	level := req.Level
	if level == "" {
		level = defaultQuizLevel
	}
	qtype := req.QType
	if qtype == "" {
		qtype = defaultQuizType
	}

	answer, err := s.generate(ctx, "quiz", prompt.BuildQuiz(blob, req.Text, level, qtype))
	if err != nil {
		return nil, err
	}

	if req.NotebookId != nil {
		if err := s.persister.SaveQuiz(ctx, *req.NotebookId, answer); err != nil {
			return nil, err
		}
	}
	return &dto.QuizResponse{QuizRaw: answer}, nil
}

func (s *aiService) StudyPlan(ctx context.Context, userId uuid.UUID, req *dto.StudyPlanRequest) (*dto.StudyPlanResponse, error) {
	var examDate *time.Time
	if req.ExamDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.ExamDate)
		if err != nil {
			return nil, apperror.New(apperror.KindInvalidInput, "exam_date must be an ISO date (YYYY-MM-DD)")
		}
		examDate = &parsed
	}

	blob, err := s.buildContext(ctx, userId, req.NotebookId)
	if err != nil {
		return nil, err
	}

	answer, err := s.generate(ctx, "study-plan", prompt.BuildStudyPlan(blob, req.Text, examDate))
	if err != nil {
		return nil, err
	}

	if req.NotebookId != nil {
		if err := s.persister.SaveStudyPlan(ctx, *req.NotebookId, examDate, answer); err != nil {
			return nil, err
		}
	}
	return &dto.StudyPlanResponse{PlanRaw: answer}, nil
}

func (s *aiService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	blob, err := s.buildContext(ctx, userId, req.NotebookId)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	// Chat turns are stateless on the server side; the client carries the
	// transcript and nothing is persisted.
	answer, err := s.generate(ctx, "chat", prompt.BuildChat(blob, history))
	if err != nil {
		return nil, err
	}
	return &dto.ChatResponse{Answer: answer}, nil
}
