package service

import (
	"context"
	"errors"
	"time"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"
	"ai-study-notebook-be/internal/repository/specification"
	"ai-study-notebook-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 24 * time.Hour

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to check email", err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt hashes at most 72 bytes; longer input is a caller error.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.New(apperror.KindInvalidInput, "password must be at most 72 bytes")
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	// The unique index on users.email backstops the check above; under the
	// narrow race the insert fails here instead of creating a duplicate.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to create user", err)
	}

	return &dto.SignupResponse{
		Id:    user.Id,
		Email: user.Email,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to load user", err)
	}
	// Unknown email and wrong password produce the same error, so neither
	// can be probed for.
	if user == nil {
		return nil, apperror.New(apperror.KindInvalidCredentials, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.New(apperror.KindInvalidCredentials, "invalid credentials")
	}

	token, err := serverutils.IssueToken(user.Id, s.jwtSecret, accessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
