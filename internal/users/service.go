package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"limitless-backend/internal/shared/auth"
	"limitless-backend/internal/shared/util"
)

var (
	// ErrInvalidInput is returned when required fields are missing.
	ErrInvalidInput = errors.New("email and password are required")
	// ErrInvalidCredentials is returned for both unknown emails and
	// wrong passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service contains registration and login logic.
type Service struct {
	Repo   Repo
	Tokens *auth.Tokens
}

// NewService constructs a Service.
func NewService(repo Repo, tokens *auth.Tokens) *Service {
	return &Service{Repo: repo, Tokens: tokens}
}

// Register hashes the password and creates the user. Duplicate emails
// surface as ErrEmailTaken regardless of which store enforced it.
func (s *Service) Register(ctx context.Context, email, password string) error {
	email = util.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return s.Repo.Create(ctx, User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
}

// Login verifies credentials and issues a signed token. Lookup misses
// and hash mismatches are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (token string, userEmail string, err error) {
	email = util.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", "", ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", "", ErrInvalidCredentials
	}

	token, err = s.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return token, user.Email, nil
}

// GetWithResumes loads a user and their resume history.
func (s *Service) GetWithResumes(ctx context.Context, userID string) (User, []Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, nil, ErrNotFound
	}
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, nil, err
	}
	resumes, err := s.Repo.ListResumes(ctx, userID)
	if err != nil {
		return User{}, nil, err
	}
	return user, resumes, nil
}
