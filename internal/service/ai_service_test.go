package service

import (
	"context"
	"testing"
	"time"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/repository/memory"
	"ai-study-notebook-be/pkg/llm"
	studyctx "ai-study-notebook-be/pkg/studyai/context"
	"ai-study-notebook-be/pkg/studyai/persist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeProvider records the last prompt and returns a canned answer.
type fakeProvider struct {
	lastPrompt string
	answer     string
	err        error
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type aiFixture struct {
	svc        IAiService
	provider   *fakeProvider
	store      *memory.Store
	userId     uuid.UUID
	notebookId uuid.UUID
}

func newAiFixture(t *testing.T) *aiFixture {
	t.Helper()
	store := memory.NewStore()
	factory := memory.NewRepositoryFactory(store)
	provider := &fakeProvider{answer: "generated"}

	userId := uuid.New()
	notebookId := uuid.New()
	store.SeedNotebook(&entity.Notebook{
		Id: notebookId, UserId: userId, Title: "Physics", CreatedAt: time.Now(),
	})
	store.SeedNote(&entity.Note{
		Id: uuid.New(), NotebookId: notebookId, Content: "F = ma", CreatedAt: time.Now(),
	})

	return &aiFixture{
		svc:        NewAiService(provider, studyctx.NewAggregator(factory), persist.NewPersister(factory), nopLogger{}),
		provider:   provider,
		store:      store,
		userId:     userId,
		notebookId: notebookId,
	}
}

func TestSummaryPersistsToNote(t *testing.T) {
	f := newAiFixture(t)

	res, err := f.svc.Summary(context.Background(), f.userId, &dto.AIRequest{
		NotebookId: &f.notebookId,
		Text:       "newton's laws",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated", res.Summary)
	assert.Contains(t, f.provider.lastPrompt, "Notebook: Physics")
	assert.Contains(t, f.provider.lastPrompt, "newton's laws")

	note := f.store.Note(f.notebookId)
	require.NotNil(t, note)
	require.NotNil(t, note.AiSummary)
	assert.Equal(t, "generated", *note.AiSummary)
}

func TestSummaryWithoutNotebookSkipsPersistence(t *testing.T) {
	f := newAiFixture(t)

	res, err := f.svc.Summary(context.Background(), f.userId, &dto.AIRequest{Text: "ad-hoc text"})
	require.NoError(t, err)
	assert.Equal(t, "generated", res.Summary)
	assert.Contains(t, f.provider.lastPrompt, "Context:\n\n")

	note := f.store.Note(f.notebookId)
	require.NotNil(t, note)
	assert.Nil(t, note.AiSummary)
}

func TestSummaryForeignNotebookIsNotFound(t *testing.T) {
	f := newAiFixture(t)

	_, err := f.svc.Summary(context.Background(), uuid.New(), &dto.AIRequest{
		NotebookId: &f.notebookId,
		Text:       "text",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, f.provider.lastPrompt, "the backend must not be called")
}

func TestFlashcardsPersistBulkRow(t *testing.T) {
	f := newAiFixture(t)
	f.provider.answer = `[{"front":"q","back":"a"}]`

	res, err := f.svc.Flashcards(context.Background(), f.userId, &dto.AIRequest{
		NotebookId: &f.notebookId,
		Text:       "cards please",
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"front":"q","back":"a"}]`, res.FlashcardsRaw)

	cards := f.store.Flashcards()
	require.Len(t, cards, 1)
	assert.Equal(t, "BULK_JSON", cards[0].Front)
}

func TestQuizDefaultsLevelAndType(t *testing.T) {
	f := newAiFixture(t)

	_, err := f.svc.Quiz(context.Background(), f.userId, &dto.QuizRequest{
		NotebookId: &f.notebookId,
		Text:       "quiz me",
	})
	require.NoError(t, err)
	assert.Contains(t, f.provider.lastPrompt, " Level: medium. Type: mix.")
	require.Len(t, f.store.Quizzes(), 1)
}

func TestQuizHonorsExplicitLevelAndType(t *testing.T) {
	f := newAiFixture(t)

	_, err := f.svc.Quiz(context.Background(), f.userId, &dto.QuizRequest{
		NotebookId: &f.notebookId,
		Text:       "quiz me",
		Level:      "hard",
		QType:      "mcq",
	})
	require.NoError(t, err)
	assert.Contains(t, f.provider.lastPrompt, " Level: hard. Type: mcq.")
}

func TestStudyPlanParsesExamDate(t *testing.T) {
	f := newAiFixture(t)
	examDate := "2026-06-01"

	_, err := f.svc.StudyPlan(context.Background(), f.userId, &dto.StudyPlanRequest{
		NotebookId: &f.notebookId,
		Text:       "plan",
		ExamDate:   &examDate,
	})
	require.NoError(t, err)
	assert.Contains(t, f.provider.lastPrompt, " Exam date: 2026-06-01.")

	plans := f.store.StudyPlans()
	require.Len(t, plans, 1)
	require.NotNil(t, plans[0].ExamDate)
}

func TestStudyPlanRejectsBadExamDate(t *testing.T) {
	f := newAiFixture(t)
	examDate := "June 1st"

	_, err := f.svc.StudyPlan(context.Background(), f.userId, &dto.StudyPlanRequest{
		NotebookId: &f.notebookId,
		Text:       "plan",
		ExamDate:   &examDate,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.Empty(t, f.provider.lastPrompt, "validation happens before the backend call")
}

func TestChatIsNotPersisted(t *testing.T) {
	f := newAiFixture(t)
	f.provider.answer = "it means force equals mass times acceleration"

	res, err := f.svc.Chat(context.Background(), f.userId, &dto.ChatRequest{
		NotebookId: &f.notebookId,
		Messages: []dto.ChatMessage{
			{Role: "user", Content: "what does F = ma mean?"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "it means force equals mass times acceleration", res.Answer)
	assert.Contains(t, f.provider.lastPrompt, "USER: what does F = ma mean?\n")

	assert.Empty(t, f.store.Flashcards())
	assert.Empty(t, f.store.Quizzes())
	assert.Empty(t, f.store.StudyPlans())
}

func TestBackendFailurePropagates(t *testing.T) {
	f := newAiFixture(t)
	f.provider.err = apperror.New(apperror.KindBackendUnavailable, "generation backend unreachable")

	_, err := f.svc.Summary(context.Background(), f.userId, &dto.AIRequest{Text: "t"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindBackendUnavailable, apperror.KindOf(err))
}
