package users

import "time"

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the outward-facing representation of a user. The
// password hash never leaves the service.
type UserResponse struct {
	ID      string           `json:"id"`
	Email   string           `json:"email"`
	Resumes []ResumeResponse `json:"resumes"`
}

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ToResponse converts a user and their resumes to the response shape.
func ToResponse(user User, resumes []Resume) UserResponse {
	out := UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Resumes: make([]ResumeResponse, 0, len(resumes)),
	}
	for _, resume := range resumes {
		out.Resumes = append(out.Resumes, ResumeResponse{
			ID:         resume.ID,
			FileName:   resume.FileName,
			FilePath:   resume.StorageKey,
			Status:     resume.Status,
			UploadedAt: resume.UploadedAt,
		})
	}
	return out
}
