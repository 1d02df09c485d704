package domain

import "time"

type Event struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Organizer string `json:"organizer"`
	// Dates are free-text calendar strings, kept exactly as entered.
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Location    string    `json:"location"`
	Capacity    string    `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventOrgCollaborator links an organization to an event. OrganizationName is
// a snapshot captured when the link is created and is not kept in sync with
// later renames.
type EventOrgCollaborator struct {
	ID               uint      `json:"id"`
	EventID          uint      `json:"eventId"`
	OrganizationID   uint      `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	CreatedAt        time.Time `json:"createdAt"`
}

// EventPersonCollaborator links a person to an event with a role. PersonName
// is a snapshot captured at link time, like EventOrgCollaborator.
type EventPersonCollaborator struct {
	ID         uint      `json:"id"`
	EventID    uint      `json:"eventId"`
	PersonID   uint      `json:"personId"`
	PersonName string    `json:"personName"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EventParticipant is an ad hoc attendee, not a reference to a Person row.
type EventParticipant struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"eventId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Mobile    string    `json:"mobile"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
