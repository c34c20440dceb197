package domain

import "time"

// RegistrationStatus enumerates the expected status values. Creation accepts
// the status as free text, so stored records may carry other values.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "Registered"
	RegistrationStatusAttended   RegistrationStatus = "Attended"
	RegistrationStatusMissed     RegistrationStatus = "Missed"
)

// Registration links a volunteer to an event. EventID and VolunteerID are
// loose references, recorded as supplied. AttendedAt stays nil: no operation
// transitions a registration after creation.
type Registration struct {
	ID           string     `json:"id"`
	EventID      string     `json:"eventId"`
	VolunteerID  string     `json:"volunteerId"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registeredAt"`
	AttendedAt   *time.Time `json:"attendedAt"`
}
