package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
}

func (s *stubAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &dto.SignupResponse{Id: uuid.New(), Email: req.Email}, nil
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.LoginResponse{AccessToken: "token", TokenType: "bearer"}, nil
}

func newAuthTestApp(stub *stubAuthService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAuthController(stub).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSignupEndpoint(t *testing.T) {
	app := newAuthTestApp(&stubAuthService{})

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "s@example.com",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.Success)
}

func TestSignupRejectsBadEmail(t *testing.T) {
	app := newAuthTestApp(&stubAuthService{})

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "not-an-email",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupMapsConflict(t *testing.T) {
	app := newAuthTestApp(&stubAuthService{
		signupErr: apperror.New(apperror.KindConflict, "email already registered"),
	})

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"email":    "s@example.com",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "email already registered", envelope.Message)
}

func TestLoginMapsInvalidCredentials(t *testing.T) {
	app := newAuthTestApp(&stubAuthService{
		loginErr: apperror.New(apperror.KindInvalidCredentials, "invalid credentials"),
	})

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "s@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	app := newAuthTestApp(&stubAuthService{})

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "s@example.com",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "bearer", envelope.Data.TokenType)
	assert.NotEmpty(t, envelope.Data.AccessToken)
}
