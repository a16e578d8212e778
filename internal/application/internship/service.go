package internship

import (
	"context"
	"strings"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/contracts"
	"github.com/internsnow/campus-match/internal/domain"
)

const cacheKeyList = "listings:internships"

type Service struct {
	repo  Repo
	pub   Publisher
	cache Cache
	clock Clock

	ttlList time.Duration
}

func New(repo Repo, clock Clock, pub Publisher, cache Cache, ttlList time.Duration) *Service {
	if ttlList == 0 {
		ttlList = 30 * time.Second
	}
	return &Service{repo: repo, pub: pub, cache: cache, clock: clock, ttlList: ttlList}
}

type WriteCmd struct {
	CompanyName    string
	JobDescription string
	URL            string
}

func authorize(actor domain.Actor) error {
	if strings.TrimSpace(actor.Sub) == "" {
		return domain.ErrUnauthorized("Unauthorized")
	}
	if !domain.CanManageInternships(actor) {
		return domain.ErrForbidden("only employers or admins can manage internships")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, cmd WriteCmd) (*domain.Internship, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	in, err := domain.NewInternship(cmd.CompanyName, cmd.JobDescription, cmd.URL, s.clock.Now())
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	// A different id means the URL was already posted and nothing was written.
	if stored.ID != in.ID {
		return stored, nil
	}
	s.afterWrite(ctx, contracts.RKInternshipCreated, stored, actor)
	return stored, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Internship, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every posting, newest first. A company filter bypasses the cache.
func (s *Service) List(ctx context.Context, companyName string) ([]*domain.Internship, error) {
	if c := strings.TrimSpace(companyName); c != "" {
		return s.repo.ListByCompany(ctx, c)
	}
	return s.ListAll(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]*domain.Internship, error) {
	if s.cache != nil {
		var cached []*domain.Internship
		found, err := s.cache.Get(ctx, cacheKeyList, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyList).Msg("cache list get failed")
		} else if found {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyList, items, s.ttlList); err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyList).Msg("cache list set failed")
		}
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, cmd WriteCmd) (*domain.Internship, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := current.ApplyUpdate(cmd.CompanyName, cmd.JobDescription, cmd.URL); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, contracts.RKInternshipUpdated, updated, actor)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := authorize(actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	zlog.Info().Str("internship_id", id).Str("actor", actor.Sub).Msg("internship deleted")
	s.afterWrite(ctx, contracts.RKInternshipDeleted, &domain.Internship{ID: id}, actor)
	return nil
}

// afterWrite drops the cached listing and emits the domain event. Both are best effort.
func (s *Service) afterWrite(ctx context.Context, routingKey string, in *domain.Internship, actor domain.Actor) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyList); err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyList).Msg("cache invalidate failed")
		}
	}
	if s.pub == nil {
		return
	}
	payload := contracts.InternshipPayload{
		InternshipID: in.ID,
		CompanyName:  in.CompanyName,
		URL:          in.URL,
		ActorSub:     actor.Sub,
	}
	env := contracts.NewEnvelope(ctx, payload, s.clock.Now())
	if err := s.pub.PublishEvent(ctx, routingKey, env); err != nil {
		zlog.Warn().Err(err).Str("routing_key", routingKey).Str("internship_id", in.ID).Msg("publish failed")
	}
}
