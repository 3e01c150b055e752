package resumes

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"limitless-backend/internal/shared/storage/object"
	"limitless-backend/internal/users"
)

// ErrInvalidInput is returned when the upload is missing its file.
var ErrInvalidInput = errors.New("resume file is required")

// Service stores resume files and records them against the owning user.
type Service struct {
	Store object.ObjectStore
	Users users.Repo
}

// NewService constructs a Service.
func NewService(store object.ObjectStore, userRepo users.Repo) *Service {
	return &Service{Store: store, Users: userRepo}
}

// Upload saves the file to object storage and appends a resume record
// to the authenticated user. If the record insert fails after the
// object was stored, the object is left behind; callers see the error.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (users.User, []users.Resume, error) {
	if fileName == "" {
		return users.User{}, nil, ErrInvalidInput
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return users.User{}, nil, err
	}

	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return users.User{}, nil, err
	}

	resume := users.Resume{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		FileName:   fileName,
		StorageKey: storageKey,
		Status:     users.ResumeStatusProcessing,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Users.AppendResume(ctx, resume); err != nil {
		return users.User{}, nil, err
	}

	list, err := s.Users.ListResumes(ctx, userID)
	if err != nil {
		return users.User{}, nil, err
	}
	return user, list, nil
}
