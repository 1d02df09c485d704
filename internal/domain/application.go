package domain

import "time"

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type Application struct {
	ID uint `json:"id"`
	// Weak reference to a Person; ApplicantName is the snapshot taken when
	// the application was filed.
	ApplicantID    uint   `json:"applicantId"`
	ApplicantName  string `json:"applicantName"`
	RequestType    string `json:"requestType"`
	Field          string `json:"field"`
	SubmitYear     string `json:"submitYear"`
	SubmitSeason   string `json:"submitSeason"`
	Status         string `json:"status"`
	Score          string `json:"score"`
	ApprovedAmount string `json:"approvedAmount"`
	Currency       string `json:"currency"`
	Notes          string `json:"notes"`

	Documents []ApplicationDocument `json:"documents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type ApplicationDocument struct {
	ID            uint      `json:"id"`
	ApplicationID uint      `json:"applicationId"`
	DocumentType  string    `json:"documentType"`
	FileName      string    `json:"fileName"`
	FilePath      string    `json:"filePath"`
	UploadDate    time.Time `json:"uploadDate"`
}
