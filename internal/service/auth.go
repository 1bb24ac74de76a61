package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"pizzametrics/internal/domain"
	"pizzametrics/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionRejected    = errors.New("session could not be stored")
)

type AuthService struct {
	repo       UserRepository
	tokens     TokenMinter
	sessions   SessionStore
	recorder   AuthRecorder
	bcryptCost int
}

func NewAuthService(repo UserRepository, tokens TokenMinter, sessions SessionStore, recorder AuthRecorder, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		tokens:     tokens,
		sessions:   sessions,
		recorder:   recorder,
		bcryptCost: bcryptCost,
	}
}

// Register creates the user and logs them in.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.CreateUser(ctx, req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.startSession(&domain.User{ID: id, Name: req.Name, Email: req.Email, Role: domain.RoleDiner})
}

// EnsureAdmin makes sure an admin account exists for email. It does not
// start a session and records no auth metrics.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.EnsureAdmin(ctx, name, email, hash)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure admin: %w", err)
	}
	return id, nil
}

// Login verifies credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller and both count as failed attempts.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.recorder.RecordAuthFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		s.recorder.RecordAuthFailure()
		return nil, ErrInvalidCredentials
	}

	return s.startSession(user)
}

func (s *AuthService) Logout(token string, userID int64) {
	s.sessions.Revoke(token)
	s.recorder.RemoveActiveUser(strconv.FormatInt(userID, 10))
}

func (s *AuthService) startSession(user *domain.User) (*domain.AuthResponse, error) {
	token, err := s.tokens.Mint(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	if !s.sessions.Put(token, user.ID) {
		return nil, ErrSessionRejected
	}

	s.recorder.RecordAuthSuccess(strconv.FormatInt(user.ID, 10))

	return &domain.AuthResponse{
		User: domain.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Roles: []domain.UserRole{{Role: cmp.Or(user.Role, domain.RoleDiner)}},
		},
		Token: token,
	}, nil
}
