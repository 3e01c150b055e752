package requests

type createRequest struct {
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedinUrl"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}
