package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxEventTextLen  = 5000
	maxEventShortLen = 255
	maxEventURLLen   = 500
	maxEventTags     = 15

	EventIDPrefix = "evt-"
)

// Event is a campus networking event. Date and time are free text as
// entered by the organizer; EndsAt is optional and drives expiry.
type Event struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	Location         string     `json:"location"`
	Description      string     `json:"description"`
	Details          string     `json:"details"`
	Host             string     `json:"host"`
	Price            string     `json:"price"`
	RegistrationLink string     `json:"registration_link"`
	Tags             []string   `json:"tags"`
	EndsAt           *time.Time `json:"ends_at,omitempty"`

	CreatedBy      *string    `json:"created_by,omitempty"`
	CreatedByEmail *string    `json:"created_by_email,omitempty"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
	DeletedBy      *string    `json:"deleted_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventInput struct {
	Title            string
	Date             string
	Time             string
	Location         string
	Description      string
	Details          string
	Host             string
	Price            string
	RegistrationLink string
	Tags             []string
	EndsAt           *time.Time
}

// Validate trims every field and enforces the event payload rules.
// The returned copy is what gets stored.
func (in EventInput) Validate() (EventInput, error) {
	out := EventInput{
		Title:            strings.TrimSpace(in.Title),
		Date:             strings.TrimSpace(in.Date),
		Time:             strings.TrimSpace(in.Time),
		Location:         strings.TrimSpace(in.Location),
		Description:      strings.TrimSpace(in.Description),
		Details:          strings.TrimSpace(in.Details),
		Host:             strings.TrimSpace(in.Host),
		Price:            strings.TrimSpace(in.Price),
		RegistrationLink: strings.TrimSpace(in.RegistrationLink),
		Tags:             NormalizeTags(in.Tags),
	}
	if in.EndsAt != nil {
		t := in.EndsAt.UTC()
		out.EndsAt = &t
	}

	if out.Title == "" || out.Date == "" || out.Time == "" || out.Location == "" ||
		out.Description == "" || out.Details == "" || out.Host == "" ||
		out.Price == "" || out.RegistrationLink == "" {
		return EventInput{}, ErrValidation("Missing required event fields")
	}

	short := []struct {
		name  string
		value string
	}{
		{"Title", out.Title},
		{"Date", out.Date},
		{"Time", out.Time},
		{"Location", out.Location},
		{"Host", out.Host},
		{"Price", out.Price},
	}
	for _, f := range short {
		if len(f.value) > maxEventShortLen {
			return EventInput{}, ErrValidation(lengthError(f.name, maxEventShortLen))
		}
	}
	if len(out.Description) > maxEventTextLen {
		return EventInput{}, ErrValidation(lengthError("Description", maxEventTextLen))
	}
	if len(out.Details) > maxEventTextLen {
		return EventInput{}, ErrValidation(lengthError("Details", maxEventTextLen))
	}
	if len(out.RegistrationLink) > maxEventURLLen {
		return EventInput{}, ErrValidation(lengthError("Registration link", maxEventURLLen))
	}
	if !IsHTTPURL(out.RegistrationLink) {
		return EventInput{}, ErrValidation("Registration link must start with http:// or https://")
	}
	return out, nil
}

func lengthError(field string, max int) string {
	return fmt.Sprintf("%s must be %d characters or fewer", field, max)
}

// NormalizeTags trims tags, drops empties, keeps the first 15 and removes
// duplicates while preserving order.
func NormalizeTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		cleaned = append(cleaned, t)
		if len(cleaned) == maxEventTags {
			break
		}
	}

	seen := make(map[string]struct{}, len(cleaned))
	out := make([]string, 0, len(cleaned))
	for _, t := range cleaned {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func NewEvent(in EventInput, createdBy, createdByEmail string, now time.Time) (*Event, error) {
	v, err := in.Validate()
	if err != nil {
		return nil, err
	}
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return nil, ErrUnauthorized("Unauthorized")
	}

	e := &Event{
		ID:        EventIDPrefix + uuid.NewString(),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	e.apply(v)
	e.CreatedBy = &createdBy
	if email := strings.TrimSpace(createdByEmail); email != "" {
		e.CreatedByEmail = &email
	}
	return e, nil
}

func (e *Event) apply(v EventInput) {
	e.Title = v.Title
	e.Date = v.Date
	e.Time = v.Time
	e.Location = v.Location
	e.Description = v.Description
	e.Details = v.Details
	e.Host = v.Host
	e.Price = v.Price
	e.RegistrationLink = v.RegistrationLink
	e.Tags = v.Tags
	e.EndsAt = v.EndsAt
}

func (e *Event) IsArchived() bool { return e.DeletedAt != nil }

// IsLive reports whether the event is still listed: not archived and not past EndsAt.
func (e *Event) IsLive(now time.Time) bool {
	if e.IsArchived() {
		return false
	}
	return e.EndsAt == nil || e.EndsAt.After(now)
}

func (e *Event) OwnerSub() string {
	if e.CreatedBy == nil {
		return ""
	}
	return *e.CreatedBy
}

func (e *Event) ApplyUpdate(in EventInput, now time.Time) error {
	if e.IsArchived() {
		return ErrNotFound("Event not found")
	}
	v, err := in.Validate()
	if err != nil {
		return err
	}
	e.apply(v)
	e.UpdatedAt = now.UTC()
	return nil
}

func (e *Event) Archive(deletedBy string, now time.Time) error {
	if e.IsArchived() {
		return ErrValidation("Event is already archived")
	}
	t := now.UTC()
	e.DeletedAt = &t
	e.DeletedBy = &deletedBy
	e.UpdatedAt = t
	return nil
}
