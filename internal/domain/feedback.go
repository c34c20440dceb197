package domain

import "time"

// Feedback is a post-event note left by a volunteer. Rating is expected to be
// 1-5 but the range is not enforced; zero is a valid submitted value.
type Feedback struct {
	ID          string    `json:"id"`
	VolunteerID string    `json:"volunteerId"`
	EventID     string    `json:"eventId"`
	Feedback    string    `json:"feedback"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}
