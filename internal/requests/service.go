package requests

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"limitless-backend/internal/shared/util"
)

// ErrInvalidInput is returned when required intake fields are missing.
var ErrInvalidInput = errors.New("email and linkedinUrl are required")

// Service contains the intake workflow logic.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create records a new intake request with status Pending.
func (s *Service) Create(ctx context.Context, email, linkedinURL string) (Request, error) {
	email = util.NormalizeEmail(email)
	linkedinURL = strings.TrimSpace(linkedinURL)
	if email == "" || linkedinURL == "" {
		return Request{}, ErrInvalidInput
	}

	req := Request{
		ID:          uuid.NewString(),
		Email:       email,
		LinkedInURL: linkedinURL,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// List returns intake records newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Request, error) {
	return s.Repo.List(ctx, limit, offset)
}

// UpdateStatus transitions a record to the given status, defaulting to
// Sent when none is supplied. The status string is stored verbatim; the
// workflow does not restrict the value set.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Request, error) {
	if strings.TrimSpace(id) == "" {
		return Request{}, ErrNotFound
	}
	if strings.TrimSpace(status) == "" {
		status = StatusSent
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}
