package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-test-secret"

type stubAiService struct {
	summaryErr error
	gotUserId  uuid.UUID
	gotText    string
}

func (s *stubAiService) Summary(ctx context.Context, userId uuid.UUID, req *dto.AIRequest) (*dto.SummaryResponse, error) {
	s.gotUserId = userId
	s.gotText = req.Text
	if s.summaryErr != nil {
		return nil, s.summaryErr
	}
	return &dto.SummaryResponse{Summary: "stub summary"}, nil
}

func (s *stubAiService) Flashcards(ctx context.Context, userId uuid.UUID, req *dto.AIRequest) (*dto.FlashcardsResponse, error) {
	return &dto.FlashcardsResponse{FlashcardsRaw: "[]"}, nil
}

func (s *stubAiService) Quiz(ctx context.Context, userId uuid.UUID, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	return &dto.QuizResponse{QuizRaw: "{}"}, nil
}

func (s *stubAiService) StudyPlan(ctx context.Context, userId uuid.UUID, req *dto.StudyPlanRequest) (*dto.StudyPlanResponse, error) {
	return &dto.StudyPlanResponse{PlanRaw: "{}"}, nil
}

func (s *stubAiService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	return &dto.ChatResponse{Answer: "stub answer"}, nil
}

func newTestApp(stub *stubAiService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAiController(stub).RegisterRoutes(app, serverutils.NewJwtMiddleware(testSecret))
	return app
}

func authedRequest(t *testing.T, userId uuid.UUID, method, target string, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	token, err := serverutils.IssueToken(userId, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) serverutils.Response {
	t.Helper()
	var envelope serverutils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestSummaryEndpoint(t *testing.T) {
	stub := &stubAiService{}
	app := newTestApp(stub)
	userId := uuid.New()

	req := authedRequest(t, userId, "POST", "/ai/summary", fiber.Map{"text": "summarize this"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.Success)
	assert.Equal(t, userId, stub.gotUserId, "identity comes from the token, not the body")
	assert.Equal(t, "summarize this", stub.gotText)
}

func TestSummaryRequiresToken(t *testing.T) {
	app := newTestApp(&stubAiService{})

	payload, _ := json.Marshal(fiber.Map{"text": "x"})
	req := httptest.NewRequest("POST", "/ai/summary", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
}

func TestSummaryRejectsExpiredToken(t *testing.T) {
	app := newTestApp(&stubAiService{})

	token, err := serverutils.IssueToken(uuid.New(), testSecret, -time.Minute)
	require.NoError(t, err)

	payload, _ := json.Marshal(fiber.Map{"text": "x"})
	req := httptest.NewRequest("POST", "/ai/summary", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSummaryValidatesBody(t *testing.T) {
	app := newTestApp(&stubAiService{})

	req := authedRequest(t, uuid.New(), "POST", "/ai/summary", fiber.Map{})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSummaryMapsNotFound(t *testing.T) {
	stub := &stubAiService{
		summaryErr: apperror.New(apperror.KindNotFound, "notebook not found"),
	}
	app := newTestApp(stub)

	req := authedRequest(t, uuid.New(), "POST", "/ai/summary", fiber.Map{"text": "x"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "notebook not found", envelope.Message)
}

func TestSummaryMapsBackendUnavailable(t *testing.T) {
	stub := &stubAiService{
		summaryErr: apperror.New(apperror.KindBackendUnavailable, "generation backend unreachable"),
	}
	app := newTestApp(stub)

	req := authedRequest(t, uuid.New(), "POST", "/ai/summary", fiber.Map{"text": "x"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestChatValidatesMessages(t *testing.T) {
	app := newTestApp(&stubAiService{})

	req := authedRequest(t, uuid.New(), "POST", "/ai/chat", fiber.Map{"messages": []fiber.Map{}})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "an empty transcript is rejected")
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(&stubAiService{})

	req := authedRequest(t, uuid.New(), "POST", "/ai/chat", fiber.Map{
		"messages": []fiber.Map{{"role": "user", "content": "hi"}},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
