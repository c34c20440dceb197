package domain

import "time"

// Volunteer is a roster record. Records are append-only: once created they are
// never updated or deleted.
type Volunteer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}
