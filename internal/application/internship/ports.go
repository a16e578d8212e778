package internship

import (
	"context"
	"time"

	"github.com/internsnow/campus-match/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type Repo interface {
	// Create returns the stored row; when the URL already exists the existing row is returned.
	Create(ctx context.Context, in *domain.Internship) (*domain.Internship, error)
	GetByID(ctx context.Context, id string) (*domain.Internship, error)
	List(ctx context.Context) ([]*domain.Internship, error)
	ListByCompany(ctx context.Context, companyName string) ([]*domain.Internship, error)
	Update(ctx context.Context, in *domain.Internship) (*domain.Internship, error)
	Delete(ctx context.Context, id string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}
