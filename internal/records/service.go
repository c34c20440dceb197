package records

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"volunteerhub/internal/domain"
	"volunteerhub/internal/kvstore"
	"volunteerhub/pkg/validator"
)

// IDGenerator produces unique record identifiers.
type IDGenerator func() string

// Service owns the four record collections and enforces the creation rules.
// Cross-collection references (organizerId, eventId, volunteerId) are
// recorded as supplied; the volunteer e-mail is the only uniqueness
// constraint.
type Service struct {
	volunteers    *Collection[domain.Volunteer]
	events        *Collection[domain.Event]
	registrations *Collection[domain.Registration]
	feedback      *Collection[domain.Feedback]

	newID IDGenerator
	now   func() time.Time

	// serializes the e-mail uniqueness scan with the insert that depends
	// on it; requests are otherwise served concurrently.
	volunteerMu sync.Mutex
}

// Option customizes a Service, mainly so tests can pin ids and timestamps.
type Option func(*Service)

func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Service) { s.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(kv kvstore.KV, opts ...Option) *Service {
	s := &Service{
		volunteers:    newCollection[domain.Volunteer](kv, bucketVolunteers),
		events:        newCollection[domain.Event](kv, bucketEvents),
		registrations: newCollection[domain.Registration](kv, bucketRegistrations),
		feedback:      newCollection[domain.Feedback](kv, bucketFeedback),
		newID:         uuid.NewString,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateVolunteerParams carries the fields of a volunteer create request.
// Skills is a pointer so a missing sequence and an empty one stay distinct.
type CreateVolunteerParams struct {
	Name    string    `json:"name" validate:"required"`
	Email   string    `json:"email" validate:"required,record_email"`
	Contact string    `json:"contact" validate:"required"`
	Skills  *[]string `json:"skills" validate:"required"`
}

// CreateVolunteer validates the input, enforces e-mail uniqueness with a full
// scan of the collection, and stores the new record.
func (s *Service) CreateVolunteer(ctx context.Context, params CreateVolunteerParams) (domain.Volunteer, error) {
	if err := validator.Validate(params); err != nil {
		return domain.Volunteer{}, err
	}

	s.volunteerMu.Lock()
	defer s.volunteerMu.Unlock()

	existing, err := s.volunteers.Values(ctx)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("scan volunteers: %w", err)
	}
	for _, v := range existing {
		if v.Email == params.Email {
			return domain.Volunteer{}, &domain.ConflictError{Field: "email", Value: params.Email}
		}
	}

	record := domain.Volunteer{
		ID:        s.newID(),
		Name:      params.Name,
		Email:     params.Email,
		Contact:   params.Contact,
		Skills:    append([]string{}, *params.Skills...),
		CreatedAt: s.now().UTC(),
	}
	if err := s.volunteers.Insert(ctx, record.ID, record); err != nil {
		return domain.Volunteer{}, fmt.Errorf("insert volunteer: %w", err)
	}
	return record, nil
}

// GetVolunteer returns the volunteer stored under id.
func (s *Service) GetVolunteer(ctx context.Context, id string) (domain.Volunteer, error) {
	record, err := s.volunteers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return domain.Volunteer{}, domain.ErrNotFound
		}
		return domain.Volunteer{}, fmt.Errorf("get volunteer: %w", err)
	}
	return record, nil
}

func (s *Service) ListVolunteers(ctx context.Context) ([]domain.Volunteer, error) {
	return s.volunteers.Values(ctx)
}

// CreateEventParams carries the fields of an event create request. DateTime
// is the raw client-supplied value and is parsed during creation.
type CreateEventParams struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	DateTime    string `json:"dateTime" validate:"required"`
	Location    string `json:"location" validate:"required"`
	OrganizerID string `json:"organizerId" validate:"required"`
}

// Accepted dateTime layouts, tried in order after RFC 3339.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseEventTime(raw string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError("dateTime", "is not a recognized date/time value")
}

// CreateEvent validates the input and stores the new record. OrganizerID is
// not checked against the volunteer collection.
func (s *Service) CreateEvent(ctx context.Context, params CreateEventParams) (domain.Event, error) {
	if err := validator.Validate(params); err != nil {
		return domain.Event{}, err
	}
	when, err := parseEventTime(params.DateTime)
	if err != nil {
		return domain.Event{}, err
	}

	record := domain.Event{
		ID:          s.newID(),
		Title:       params.Title,
		Description: params.Description,
		DateTime:    when,
		Location:    params.Location,
		OrganizerID: params.OrganizerID,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.events.Insert(ctx, record.ID, record); err != nil {
		return domain.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return record, nil
}

func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.events.Values(ctx)
}

// CreateRegistrationParams carries the fields of a registration create
// request. Status is accepted as free text.
type CreateRegistrationParams struct {
	EventID     string `json:"eventId" validate:"required"`
	VolunteerID string `json:"volunteerId" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

// CreateRegistration validates the input and stores the new record with the
// registration time set to now and no attendance time.
func (s *Service) CreateRegistration(ctx context.Context, params CreateRegistrationParams) (domain.Registration, error) {
	if err := validator.Validate(params); err != nil {
		return domain.Registration{}, err
	}

	record := domain.Registration{
		ID:           s.newID(),
		EventID:      params.EventID,
		VolunteerID:  params.VolunteerID,
		Status:       params.Status,
		RegisteredAt: s.now().UTC(),
		AttendedAt:   nil,
	}
	if err := s.registrations.Insert(ctx, record.ID, record); err != nil {
		return domain.Registration{}, fmt.Errorf("insert registration: %w", err)
	}
	return record, nil
}

func (s *Service) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	return s.registrations.Values(ctx)
}

// CreateFeedbackParams carries the fields of a feedback create request.
// Rating is a pointer so a submitted zero is distinguishable from a missing
// field; its range is not checked.
type CreateFeedbackParams struct {
	VolunteerID string   `json:"volunteerId" validate:"required"`
	EventID     string   `json:"eventId" validate:"required"`
	Feedback    string   `json:"feedback" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
}

// CreateFeedback validates the input and stores the new record.
func (s *Service) CreateFeedback(ctx context.Context, params CreateFeedbackParams) (domain.Feedback, error) {
	if err := validator.Validate(params); err != nil {
		return domain.Feedback{}, err
	}

	record := domain.Feedback{
		ID:          s.newID(),
		VolunteerID: params.VolunteerID,
		EventID:     params.EventID,
		Feedback:    params.Feedback,
		Rating:      *params.Rating,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.feedback.Insert(ctx, record.ID, record); err != nil {
		return domain.Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}
	return record, nil
}

func (s *Service) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.Values(ctx)
}
