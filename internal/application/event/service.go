package event

import (
	"context"
	"strings"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/contracts"
	"github.com/internsnow/campus-match/internal/domain"
)

const cacheKeyLive = "listings:events:live"

type Service struct {
	repo  Repo
	pub   Publisher
	cache Cache
	clock Clock

	ttlLive time.Duration
}

func New(repo Repo, clock Clock, pub Publisher, cache Cache, ttlLive time.Duration) *Service {
	if ttlLive == 0 {
		ttlLive = 30 * time.Second
	}
	return &Service{repo: repo, pub: pub, cache: cache, clock: clock, ttlLive: ttlLive}
}

func requireActor(actor domain.Actor) error {
	if strings.TrimSpace(actor.Sub) == "" {
		return domain.ErrUnauthorized("Unauthorized")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, in domain.EventInput) (*domain.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ev, err := domain.NewEvent(in, actor.Sub, actor.Email, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, err
	}
	zlog.Info().Str("event_id", ev.ID).Str("actor", actor.Sub).Msg("event created")
	s.afterWrite(ctx, contracts.RKEventCreated, ev, actor)
	return ev, nil
}

// Get returns a listed event. Archived events are reported as missing.
func (s *Service) Get(ctx context.Context, id string) (*domain.Event, error) {
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev.IsArchived() {
		return nil, domain.ErrNotFound("Event not found")
	}
	return ev, nil
}

// ListLive is the public listing: not archived and not ended.
func (s *Service) ListLive(ctx context.Context) ([]*domain.Event, error) {
	now := s.clock.Now().UTC()
	if s.cache != nil {
		var cached []*domain.Event
		found, err := s.cache.Get(ctx, cacheKeyLive, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyLive).Msg("cache list get failed")
		} else if found {
			// events can end while the listing sits in the cache
			return liveOnly(cached, now), nil
		}
	}

	items, err := s.repo.ListLive(ctx, now)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyLive, items, s.ttlLive); err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyLive).Msg("cache list set failed")
		}
	}
	return items, nil
}

func liveOnly(items []*domain.Event, now time.Time) []*domain.Event {
	out := make([]*domain.Event, 0, len(items))
	for _, e := range items {
		if e.IsLive(now) {
			out = append(out, e)
		}
	}
	return out
}

// ListManageable returns every event (archived included) for admins and the
// caller's own events for everyone else.
func (s *Service) ListManageable(ctx context.Context, actor domain.Actor) ([]*domain.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if actor.IsAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, actor.Sub)
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, in domain.EventInput) (*domain.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev.IsArchived() {
		return nil, domain.ErrNotFound("Event not found")
	}
	if !domain.CanManageEvent(ev.OwnerSub(), actor) {
		return nil, domain.ErrForbidden("Only event owners or admins can edit this event")
	}
	if err := ev.ApplyUpdate(in, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, contracts.RKEventUpdated, ev, actor)
	return ev, nil
}

// Archive soft deletes the event. The row stays visible to ListManageable for admins.
func (s *Service) Archive(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanManageEvent(ev.OwnerSub(), actor) {
		return nil, domain.ErrForbidden("Only event owners or admins can remove this event")
	}
	if err := ev.Archive(actor.Sub, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.Archive(ctx, ev.ID, actor.Sub, *ev.DeletedAt); err != nil {
		return nil, err
	}
	zlog.Info().Str("event_id", ev.ID).Str("actor", actor.Sub).Msg("event archived")
	s.afterWrite(ctx, contracts.RKEventArchived, ev, actor)
	return ev, nil
}

func (s *Service) afterWrite(ctx context.Context, routingKey string, ev *domain.Event, actor domain.Actor) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyLive); err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyLive).Msg("cache invalidate failed")
		}
	}
	if s.pub == nil {
		return
	}
	env := contracts.NewEnvelope(ctx, contracts.EventPayload{
		EventID:  ev.ID,
		Title:    ev.Title,
		Location: ev.Location,
		Tags:     ev.Tags,
		ActorSub: actor.Sub,
	}, s.clock.Now())
	if err := s.pub.PublishEvent(ctx, routingKey, env); err != nil {
		zlog.Error().Err(err).Str("rk", routingKey).Str("event_id", ev.ID).Msg("publish domain event failed")
	}
}
