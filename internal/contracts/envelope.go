package contracts

import (
	"context"
	"time"

	"github.com/google/uuid"

	reqctx "github.com/internsnow/campus-match/internal/pkg/context"
)

const (
	EnvelopeVersion = 1
	Producer        = "campus-match"
)

// Routing keys published on the topic exchange.
const (
	RKInternshipCreated = "internship.created"
	RKInternshipUpdated = "internship.updated"
	RKInternshipDeleted = "internship.deleted"

	RKEventCreated  = "event.created"
	RKEventUpdated  = "event.updated"
	RKEventArchived = "event.archived"

	RKFluencyCompleted = "fluency.completed"
)

// DomainEventEnvelope is the stable contract for everything this service emits.
type DomainEventEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

type InternshipPayload struct {
	InternshipID string `json:"internship_id"`
	CompanyName  string `json:"company_name,omitempty"`
	URL          string `json:"url,omitempty"`
	ActorSub     string `json:"actor_sub,omitempty"`
}

type EventPayload struct {
	EventID  string   `json:"event_id"`
	Title    string   `json:"title,omitempty"`
	Location string   `json:"location,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	ActorSub string   `json:"actor_sub,omitempty"`
}

type FluencyPayload struct {
	UserSub        string  `json:"user_sub"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	Level          string  `json:"level"`
}

// NewEnvelope wraps payload with a fresh message id and the request id carried by ctx.
func NewEnvelope[T any](ctx context.Context, payload T, now time.Time) DomainEventEnvelope[T] {
	return DomainEventEnvelope[T]{
		Version:    EnvelopeVersion,
		Producer:   Producer,
		MessageID:  uuid.NewString(),
		TraceID:    reqctx.RequestIDFromContext(ctx),
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
}

// MessageKey is used as the AMQP message id.
func (e DomainEventEnvelope[T]) MessageKey() string { return e.MessageID }
