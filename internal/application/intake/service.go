// Package intake answers the visitor intake form: it loads the listings the
// visitor asked for and ranks them with the match package.
package intake

import (
	"context"
	"strings"
	"sync"

	"github.com/internsnow/campus-match/internal/application/intake/match"
	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/metrics"
)

const (
	DefaultMaxOpportunities = 8
	DefaultMaxEvents        = 6

	DefaultMajorLimit = 10
	MaxMajorLimit     = 50
)

type InternshipSource interface {
	ListAll(ctx context.Context) ([]*domain.Internship, error)
}

type EventSource interface {
	ListLive(ctx context.Context) ([]*domain.Event, error)
}

type Query struct {
	Location string
	Major    string
	// Interests holds the raw query values; nil means none were sent.
	Interests []string
}

type Response struct {
	Location             string
	Major                string
	Interests            []match.Interest
	UsedDefaultInterests bool
	Opportunities        []match.OpportunityRecommendation
	Events               []match.EventRecommendation
}

type Service struct {
	internships InternshipSource
	events      EventSource

	maxOpportunities int
	maxEvents        int
}

func New(internships InternshipSource, events EventSource, maxOpportunities, maxEvents int) *Service {
	if maxOpportunities <= 0 {
		maxOpportunities = DefaultMaxOpportunities
	}
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return &Service{
		internships:      internships,
		events:           events,
		maxOpportunities: maxOpportunities,
		maxEvents:        maxEvents,
	}
}

func (s *Service) Match(ctx context.Context, q Query) (Response, error) {
	interests := match.ParseIntakeInterests(q.Interests)
	usedDefault := len(interests) == 0
	if usedDefault {
		interests = match.DefaultInterests()
	}

	wantsOpportunities := match.HasInterest(interests, match.InterestInternship) ||
		match.HasInterest(interests, match.InterestJob)
	wantsEvents := match.HasInterest(interests, match.InterestEvent)

	var (
		wg          sync.WaitGroup
		internships []*domain.Internship
		events      []*domain.Event
		errI, errE  error
	)
	if wantsOpportunities {
		wg.Add(1)
		go func() {
			defer wg.Done()
			internships, errI = s.internships.ListAll(ctx)
		}()
	}
	if wantsEvents {
		wg.Add(1)
		go func() {
			defer wg.Done()
			events, errE = s.events.ListLive(ctx)
		}()
	}
	wg.Wait()
	if errI != nil {
		return Response{}, errI
	}
	if errE != nil {
		return Response{}, errE
	}

	location := strings.TrimSpace(q.Location)
	major := strings.TrimSpace(q.Major)
	result := match.BuildIntakeRecommendations(internships, events, match.Input{
		Location:  location,
		Major:     major,
		Interests: interests,
	})

	resp := Response{
		Location:             location,
		Major:                major,
		Interests:            interests,
		UsedDefaultInterests: usedDefault,
		Opportunities:        truncate(result.Opportunities, s.maxOpportunities),
		Events:               truncate(result.Events, s.maxEvents),
	}

	labels := make([]string, 0, len(interests))
	for _, i := range interests {
		labels = append(labels, string(i))
	}
	metrics.RecordIntake(labels, len(resp.Opportunities), len(resp.Events))

	return resp, nil
}

// MajorSuggestions clamps limit to [1, MaxMajorLimit], defaulting when unset.
func (s *Service) MajorSuggestions(query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMajorLimit
	}
	if limit > MaxMajorLimit {
		limit = MaxMajorLimit
	}
	return match.MajorSuggestions(query, limit)
}

func truncate[T any](items []T, max int) []T {
	if len(items) <= max {
		return items
	}
	return items[:max]
}
