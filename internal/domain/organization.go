package domain

import "time"

type Organization struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	NationalID string    `json:"nationalId"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Website    string    `json:"website"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}
