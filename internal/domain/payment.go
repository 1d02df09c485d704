package domain

import "time"

// Payment may relate to a person, an organization and an event at once. Each
// relation is a weak id reference paired with a name snapshot taken when the
// payment was recorded. Amount is decimal-as-text, kept exactly as entered.
type Payment struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	PaymentCategory   string    `json:"paymentCategory"`
	RelatedPersonID   uint      `json:"relatedPersonId"`
	RelatedPersonName string    `json:"relatedPersonName"`
	RelatedOrgID      uint      `json:"relatedOrgId"`
	RelatedOrgName    string    `json:"relatedOrgName"`
	RelatedEventID    uint      `json:"relatedEventId"`
	RelatedEventName  string    `json:"relatedEventName"`
	PaymentDate       string    `json:"paymentDate"`
	Amount            string    `json:"amount"`
	Method            string    `json:"method"`
	TransactionType   string    `json:"transactionType"`
	PaymentType       string    `json:"paymentType"`
	Status            string    `json:"status"`
	RefNumber         string    `json:"refNumber"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
}
