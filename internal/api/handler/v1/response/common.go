package response

import "github.com/haamee/haamee-api/internal/domain"

// CreatedResponse acknowledges a create with the new row ID.
type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// MessageResponse acknowledges an update or delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse acknowledges a stored attachment.
type UploadResponse struct {
	ID       uint   `json:"id"`
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  domain.Admin `json:"user"`
}

type HealthcheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
