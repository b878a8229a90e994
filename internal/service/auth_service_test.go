package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"
	"ai-study-notebook-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture() (IAuthService, *memory.Store) {
	store := memory.NewStore()
	return NewAuthService(memory.NewRepositoryFactory(store), testSecret), store
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	signupRes, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:    "student@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", signupRes.Email)
	assert.NotEqual(t, uuid.Nil, signupRes.Id)

	loginRes, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "student@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", loginRes.TokenType)

	// The issued token must resolve back to the signed-up user.
	userId, err := serverutils.ResolveToken(loginRes.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, signupRes.Id, userId)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@b.c", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &dto.SignupRequest{Email: "a@b.c", Password: "other-pw"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@b.c", Password: "pw123456"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@b.c", Password: "pw123456"})
	_, errWrongPw := svc.Login(ctx, &dto.LoginRequest{Email: "a@b.c", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(errUnknown))
	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(errWrongPw))
	// Identical message: unknown email and wrong password cannot be told apart.
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestSignupRejectsOversizedPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:    "a@b.c",
		Password: strings.Repeat("x", 100),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestPasswordIsStoredHashed(t *testing.T) {
	svc, store := newAuthFixture()
	ctx := context.Background()

	res, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@b.c", Password: "pw123456"})
	require.NoError(t, err)

	uow := memory.NewRepositoryFactory(store).NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, res.Id, user.Id)
	assert.NotEqual(t, "pw123456", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "pw123456")
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	_, err := serverutils.ResolveToken("not-a-jwt", testSecret)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

func TestResolveTokenRejectsExpired(t *testing.T) {
	token, err := serverutils.IssueToken(uuid.New(), testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = serverutils.ResolveToken(token, testSecret)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

func TestResolveTokenRejectsWrongSecret(t *testing.T) {
	token, err := serverutils.IssueToken(uuid.New(), "other-secret", time.Hour)
	require.NoError(t, err)

	_, err = serverutils.ResolveToken(token, testSecret)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}
