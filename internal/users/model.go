package users

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and is
// never serialized outward.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Resume is an uploaded resume attached to a user.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	StorageKey string
	Status     string
	UploadedAt time.Time
}

// ResumeStatusProcessing is the status every freshly uploaded resume starts in.
const ResumeStatusProcessing = "Processing"
