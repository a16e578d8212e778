package rabbitmq

import (
	"context"
	"errors"
	"strings"

	zlog "github.com/rs/zerolog/log"
)

// Discard stands in for Publisher when no broker is configured. Payloads are
// still encoded, so an event that could never be sent fails the same way.
type Discard struct{}

func (Discard) PublishEvent(ctx context.Context, routingKey string, payload any) error {
	if strings.TrimSpace(routingKey) == "" {
		return errors.New("missing routingKey")
	}
	body, messageID, err := encode(payload)
	if err != nil {
		return err
	}
	zlog.Debug().
		Str("routing_key", routingKey).
		Str("message_id", messageID).
		Int("bytes", len(body)).
		Msg("broker disabled: event dropped")
	return nil
}
