package domain

import "time"

type Person struct {
	ID           uint   `json:"id"`
	NationalCode string `json:"nationalCode"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"` // "M", "F" or empty
	BirthDate    string `json:"birthDate"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Education    string `json:"education"`
	Job          string `json:"job"`
	// Weak reference to an Organization. Nothing enforces its existence and
	// deleting the organization leaves it dangling.
	OrganizationID          uint   `json:"organizationId"`
	ChangeFieldToHumanities bool   `json:"changeFieldToHumanities"`
	Notes                   string `json:"notes"`

	Contacts  []PersonContact  `json:"contacts,omitempty"`
	Roles     []PersonRole     `json:"roles,omitempty"`
	Documents []PersonDocument `json:"documents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type PersonContact struct {
	ID           uint      `json:"id"`
	PersonID     uint      `json:"personId"`
	ContactType  string    `json:"contactType"`
	ContactValue string    `json:"contactValue"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PersonRole struct {
	ID           uint      `json:"id"`
	PersonID     uint      `json:"personId"`
	RoleTitle    string    `json:"roleTitle"`
	Organization string    `json:"organization"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PersonDocument struct {
	ID           uint      `json:"id"`
	PersonID     uint      `json:"personId"`
	DocumentType string    `json:"documentType"`
	FileName     string    `json:"fileName"`
	FilePath     string    `json:"filePath"`
	UploadDate   time.Time `json:"uploadDate"`
}
