package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/internsnow/campus-match/internal/domain"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Date, &e.Time, &e.Location, &e.Description, &e.Details,
		&e.Host, &e.Price, &e.RegistrationLink, pq.Array(&e.Tags), &e.EndsAt,
		&e.CreatedBy, &e.CreatedByEmail, &e.DeletedAt, &e.DeletedBy,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID, e.Title, e.Date, e.Time, e.Location, e.Description, e.Details,
		e.Host, e.Price, e.RegistrationLink, pq.Array(e.Tags), e.EndsAt,
		e.CreatedBy, e.CreatedByEmail, e.CreatedAt, e.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict("An event with that registration link already exists")
	}
	return err
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, getEventSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("Event not found")
	}
	return e, err
}

func (r *EventRepo) ListLive(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	return r.query(ctx, listLiveEventsSQL, now)
}

func (r *EventRepo) ListAll(ctx context.Context) ([]*domain.Event, error) {
	return r.query(ctx, listAllEventsSQL)
}

func (r *EventRepo) ListByOwner(ctx context.Context, ownerSub string) ([]*domain.Event, error) {
	return r.query(ctx, listEventsByOwnerSQL, ownerSub)
}

func (r *EventRepo) query(ctx context.Context, q string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.db.ExecContext(ctx, updateEventSQL,
		e.ID, e.Title, e.Date, e.Time, e.Location, e.Description, e.Details,
		e.Host, e.Price, e.RegistrationLink, pq.Array(e.Tags), e.EndsAt, e.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict("An event with that registration link already exists")
	}
	return expectOneRow(res, err)
}

func (r *EventRepo) Archive(ctx context.Context, id, deletedBy string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, archiveEventSQL, id, at, deletedBy)
	return expectOneRow(res, err)
}

func (r *EventRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countEventsSQL).Scan(&n)
	return n, err
}

// expectOneRow maps a guarded UPDATE that touched nothing to not found.
func expectOneRow(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("Event not found")
	}
	return nil
}
