package event

import (
	"context"
	"time"

	"github.com/internsnow/campus-match/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type Repo interface {
	Create(ctx context.Context, e *domain.Event) error
	// GetByID also returns archived rows; callers decide visibility.
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListLive(ctx context.Context, now time.Time) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.Event, error)
	ListByOwner(ctx context.Context, ownerSub string) ([]*domain.Event, error)
	// Update and Archive only touch rows that are not archived yet.
	Update(ctx context.Context, e *domain.Event) error
	Archive(ctx context.Context, id, deletedBy string, at time.Time) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}
