package requests

import "time"

// Request is a resume-request intake record.
type Request struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	LinkedInURL string    `json:"linkedinUrl"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Statuses the workflow itself assigns. Updates accept any string, so
// these are defaults rather than an enum.
const (
	StatusPending = "Pending"
	StatusSent    = "Sent"
)
