package records

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/internal/domain"
	"volunteerhub/internal/kvstore"
)

func newTestService(opts ...Option) *Service {
	seq := 0
	base := []Option{
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	}
	return NewService(kvstore.NewMemory(), append(base, opts...)...)
}

func skillsOf(v ...string) *[]string {
	s := append([]string{}, v...)
	return &s
}

func ratingOf(v float64) *float64 {
	return &v
}

func validVolunteer(email string) CreateVolunteerParams {
	return CreateVolunteerParams{
		Name:    "Ann",
		Email:   email,
		Contact: "555",
		Skills:  skillsOf("first-aid"),
	}
}

func TestCreateVolunteerAccumulates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	seen := map[string]bool{}
	for _, email := range emails {
		record, err := svc.CreateVolunteer(ctx, validVolunteer(email))
		require.NoError(t, err)
		require.NotEmpty(t, record.ID)
		require.False(t, seen[record.ID], "ids must be unique")
		seen[record.ID] = true
	}

	values, err := svc.ListVolunteers(ctx)
	require.NoError(t, err)
	require.Len(t, values, len(emails))
	for i, email := range emails {
		assert.Equal(t, email, values[i].Email)
	}
}

func TestCreateVolunteerRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateVolunteer(ctx, validVolunteer("ann@x.com"))
	require.NoError(t, err)

	_, err = svc.CreateVolunteer(ctx, validVolunteer("ann@x.com"))
	var cerr *domain.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "email", cerr.Field)

	values, err := svc.ListVolunteers(ctx)
	require.NoError(t, err)
	assert.Len(t, values, 1, "rejected create must not change the collection")
}

func TestCreateVolunteerEmailFormat(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateVolunteer(ctx, validVolunteer("not-an-email"))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	_, err = svc.CreateVolunteer(ctx, validVolunteer("a@b.co"))
	require.NoError(t, err)
}

func TestCreateVolunteerRequiresFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	cases := []struct {
		name   string
		params CreateVolunteerParams
		field  string
	}{
		{"missing name", CreateVolunteerParams{Email: "a@x.com", Contact: "555", Skills: skillsOf()}, "name"},
		{"missing email", CreateVolunteerParams{Name: "Ann", Contact: "555", Skills: skillsOf()}, "email"},
		{"missing contact", CreateVolunteerParams{Name: "Ann", Email: "a@x.com", Skills: skillsOf()}, "contact"},
		{"missing skills", CreateVolunteerParams{Name: "Ann", Email: "a@x.com", Contact: "555"}, "skills"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateVolunteer(ctx, tc.params)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	values, err := svc.ListVolunteers(ctx)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestCreateVolunteerAcceptsEmptySkills(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	params := validVolunteer("ann@x.com")
	params.Skills = skillsOf()

	record, err := svc.CreateVolunteer(ctx, params)
	require.NoError(t, err)
	assert.NotNil(t, record.Skills)
	assert.Empty(t, record.Skills)
}

func TestGetVolunteer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateVolunteer(ctx, validVolunteer("ann@x.com"))
	require.NoError(t, err)

	got, err := svc.GetVolunteer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetVolunteer(ctx, "no-such-id")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVolunteerRoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(WithClock(func() time.Time { return now }))

	params := CreateVolunteerParams{
		Name:    "Ann",
		Email:   "ann@x.com",
		Contact: "555",
		Skills:  skillsOf("first-aid", "driving"),
	}
	created, err := svc.CreateVolunteer(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, "ann@x.com", created.Email)
	assert.Equal(t, "555", created.Contact)
	assert.Equal(t, []string{"first-aid", "driving"}, created.Skills)
	assert.Equal(t, now, created.CreatedAt)

	fetched, err := svc.GetVolunteer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	listed, err := svc.ListVolunteers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	record, err := svc.CreateEvent(ctx, CreateEventParams{
		Title:       "Beach cleanup",
		Description: "Monthly shoreline cleanup",
		DateTime:    "2025-07-12T09:00:00Z",
		Location:    "Pier 3",
		OrganizerID: "organizer-without-a-record",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, time.Date(2025, 7, 12, 9, 0, 0, 0, time.UTC), record.DateTime)
	// organizerId is a loose reference: no volunteer with that id exists.
	assert.Equal(t, "organizer-without-a-record", record.OrganizerID)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestCreateEventDateTimeLayouts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	accepted := []string{
		"2025-07-12T09:00:00Z",
		"2025-07-12 09:00",
		"2025-07-12",
	}
	for _, raw := range accepted {
		params := CreateEventParams{
			Title:       "t",
			Description: "d",
			DateTime:    raw,
			Location:    "l",
			OrganizerID: "o",
		}
		_, err := svc.CreateEvent(ctx, params)
		assert.NoError(t, err, "expected %q to parse", raw)
	}

	_, err := svc.CreateEvent(ctx, CreateEventParams{
		Title:       "t",
		Description: "d",
		DateTime:    "next tuesday-ish",
		Location:    "l",
		OrganizerID: "o",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dateTime", verr.Field)
}

func TestCreateRegistration(t *testing.T) {
	ctx := context.Background()
	start := time.Now()
	svc := newTestService()

	record, err := svc.CreateRegistration(ctx, CreateRegistrationParams{
		EventID:     "ev-1",
		VolunteerID: "vol-1",
		Status:      string(domain.RegistrationStatusRegistered),
	})
	require.NoError(t, err)
	assert.Nil(t, record.AttendedAt, "attendedAt is never set at creation")
	assert.False(t, record.RegisteredAt.Before(start.UTC()))

	// Status is accepted as free text.
	other, err := svc.CreateRegistration(ctx, CreateRegistrationParams{
		EventID:     "ev-1",
		VolunteerID: "vol-2",
		Status:      "definitely-not-an-enum-value",
	})
	require.NoError(t, err)
	assert.Equal(t, "definitely-not-an-enum-value", other.Status)

	regs, err := svc.ListRegistrations(ctx)
	require.NoError(t, err)
	assert.Len(t, regs, 2)
}

func TestCreateFeedback(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	record, err := svc.CreateFeedback(ctx, CreateFeedbackParams{
		VolunteerID: "vol-1",
		EventID:     "ev-1",
		Feedback:    "great event",
		Rating:      ratingOf(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, record.Rating)

	items, err := svc.ListFeedback(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreateFeedbackRequiresRating(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateFeedback(ctx, CreateFeedbackParams{
		VolunteerID: "vol-1",
		EventID:     "ev-1",
		Feedback:    "great event",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "rating", verr.Field)

	items, err := svc.ListFeedback(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "rejected create must not store anything")
}

func TestCreateFeedbackRatingRangeUnchecked(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Zero is a legitimate submitted value, not a missing field.
	zero, err := svc.CreateFeedback(ctx, CreateFeedbackParams{
		VolunteerID: "vol-1",
		EventID:     "ev-1",
		Feedback:    "meh",
		Rating:      ratingOf(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.Rating)

	high, err := svc.CreateFeedback(ctx, CreateFeedbackParams{
		VolunteerID: "vol-2",
		EventID:     "ev-1",
		Feedback:    "off the charts",
		Rating:      ratingOf(99),
	})
	require.NoError(t, err)
	assert.Equal(t, 99.0, high.Rating)
}
