package domain

import "time"

// Event is a scheduled activity volunteers can register for. OrganizerID is a
// loose reference to a volunteer id; it is recorded as supplied and not
// checked against the volunteer collection.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	Location    string    `json:"location"`
	OrganizerID string    `json:"organizerId"`
	CreatedAt   time.Time `json:"createdAt"`
}
