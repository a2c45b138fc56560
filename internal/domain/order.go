package domain

import "time"

// StatusPaid is the only status a simulated order ever carries.
const StatusPaid = "paid"

// Donor identifies who submitted a simulated checkout.
type Donor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is the fabricated receipt of a simulated checkout. It snapshots the
// cart at submission time and is never mutated afterwards.
type Order struct {
	ID        string    `json:"id"`
	Items     Cart      `json:"items"`
	Donor     Donor     `json:"donor"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
