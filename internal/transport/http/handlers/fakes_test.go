package handlers

import (
	"context"
	"net/http"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/transport/http/middleware"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type memInternships struct {
	mu   sync.Mutex
	byID map[string]*domain.Internship
	err  error
}

func newMemInternships(items ...*domain.Internship) *memInternships {
	m := &memInternships{byID: map[string]*domain.Internship{}}
	for _, it := range items {
		m.byID[it.ID] = it
	}
	return m
}

func (m *memInternships) Create(_ context.Context, in *domain.Internship) (*domain.Internship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.byID {
		if it.URL == in.URL {
			return it, nil
		}
	}
	m.byID[in.ID] = in
	return in, nil
}

func (m *memInternships) GetByID(_ context.Context, id string) (*domain.Internship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("Internship not found")
	}
	return it, nil
}

func (m *memInternships) List(_ context.Context) ([]*domain.Internship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Internship, 0, len(m.byID))
	for _, it := range m.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memInternships) ListByCompany(ctx context.Context, name string) ([]*domain.Internship, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []*domain.Internship{}
	for _, it := range all {
		if strings.Contains(strings.ToLower(it.CompanyName), strings.ToLower(name)) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memInternships) Update(_ context.Context, in *domain.Internship) (*domain.Internship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[in.ID]; !ok {
		return nil, domain.ErrNotFound("Internship not found")
	}
	m.byID[in.ID] = in
	return in, nil
}

func (m *memInternships) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound("Internship not found")
	}
	delete(m.byID, id)
	return nil
}

type memEvents struct {
	mu   sync.Mutex
	byID map[string]*domain.Event
}

func newMemEvents(items ...*domain.Event) *memEvents {
	m := &memEvents{byID: map[string]*domain.Event{}}
	for _, e := range items {
		m.byID[e.ID] = e
	}
	return m
}

func (m *memEvents) Create(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[e.ID] = e
	return nil
}

func (m *memEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("Event not found")
	}
	return e, nil
}

func (m *memEvents) list(keep func(*domain.Event) bool) []*domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Event{}
	for _, e := range m.byID {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memEvents) ListLive(_ context.Context, now time.Time) ([]*domain.Event, error) {
	return m.list(func(e *domain.Event) bool { return e.IsLive(now) }), nil
}

func (m *memEvents) ListAll(_ context.Context) ([]*domain.Event, error) {
	return m.list(func(*domain.Event) bool { return true }), nil
}

func (m *memEvents) ListByOwner(_ context.Context, owner string) ([]*domain.Event, error) {
	return m.list(func(e *domain.Event) bool { return e.OwnerSub() == owner }), nil
}

func (m *memEvents) Update(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.byID[e.ID]
	if !ok || cur.IsArchived() {
		return domain.ErrNotFound("Event not found")
	}
	m.byID[e.ID] = e
	return nil
}

func (m *memEvents) Archive(_ context.Context, id, by string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound("Event not found")
	}
	e.DeletedAt = &at
	e.DeletedBy = &by
	return nil
}

type memFluency struct {
	mu        sync.Mutex
	questions []*domain.FluencyQuestion
	results   []*domain.FluencyResult
}

func (m *memFluency) CreateQuestion(_ context.Context, q *domain.FluencyQuestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	q.ID = int64(len(m.questions) + 1)
	m.questions = append(m.questions, q)
	return nil
}

func (m *memFluency) GetQuestion(_ context.Context, id int64) (*domain.FluencyQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.questions {
		if q.ID == id {
			cp := *q
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound("Question not found")
}

func (m *memFluency) UpdateQuestion(_ context.Context, q *domain.FluencyQuestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, cur := range m.questions {
		if cur.ID == q.ID && cur.IsActive {
			m.questions[i] = q
			return nil
		}
	}
	return domain.ErrNotFound("Question not found")
}

func (m *memFluency) DeactivateQuestion(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.questions {
		if q.ID == id && q.IsActive {
			q.IsActive = false
			q.UpdatedAt = at
			return nil
		}
	}
	return domain.ErrNotFound("Question not found")
}

func (m *memFluency) active(keep func(*domain.FluencyQuestion) bool) []*domain.FluencyQuestion {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.FluencyQuestion{}
	for _, q := range m.questions {
		if q.IsActive && keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func (m *memFluency) ActiveQuestions(_ context.Context, category string) ([]*domain.FluencyQuestion, error) {
	return m.active(func(q *domain.FluencyQuestion) bool { return category == "" || q.Category == category }), nil
}

func (m *memFluency) RandomQuestions(_ context.Context, count int, d domain.Difficulty) ([]*domain.FluencyQuestion, error) {
	out := m.active(func(q *domain.FluencyQuestion) bool { return d == "" || q.Difficulty == d })
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

func (m *memFluency) QuestionsByIDs(_ context.Context, ids []int64) ([]*domain.FluencyQuestion, error) {
	return m.active(func(q *domain.FluencyQuestion) bool { return slices.Contains(ids, q.ID) }), nil
}

func (m *memFluency) SaveResult(_ context.Context, r *domain.FluencyResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = int64(len(m.results) + 1)
	m.results = append(m.results, r)
	return nil
}

func (m *memFluency) ResultsFor(_ context.Context, sub string) ([]*domain.FluencyResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.FluencyResult{}
	for i := len(m.results) - 1; i >= 0; i-- {
		if m.results[i].UserSub == sub {
			out = append(out, m.results[i])
		}
	}
	return out, nil
}

func (m *memFluency) LatestResultFor(ctx context.Context, sub string) (*domain.FluencyResult, error) {
	out, _ := m.ResultsFor(ctx, sub)
	if len(out) == 0 {
		return nil, domain.ErrNotFound("No fluency results")
	}
	return out[0], nil
}

func withParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withActor(r *http.Request, a domain.Actor) *http.Request {
	return r.WithContext(middleware.WithActor(r.Context(), a))
}

func ptr[T any](v T) *T { return &v }
