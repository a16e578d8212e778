package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/internsnow/campus-match/internal/domain"
)

type InternshipRepo struct {
	db *sql.DB
}

func NewInternshipRepo(db *sql.DB) *InternshipRepo { return &InternshipRepo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInternship(row rowScanner) (*domain.Internship, error) {
	var in domain.Internship
	if err := row.Scan(&in.ID, &in.CompanyName, &in.JobDescription, &in.URL, &in.CreatedAt); err != nil {
		return nil, err
	}
	in.CreatedAt = in.CreatedAt.UTC()
	return &in, nil
}

// Create inserts the posting. An existing URL wins: its row is returned unchanged.
func (r *InternshipRepo) Create(ctx context.Context, in *domain.Internship) (*domain.Internship, error) {
	row := r.db.QueryRowContext(ctx, insertInternshipSQL,
		in.ID, in.CompanyName, in.JobDescription, in.URL, in.CreatedAt,
	)
	out, err := scanInternship(row)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	out, err = scanInternship(r.db.QueryRowContext(ctx, getInternshipByURLSQL, in.URL))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidState("internship insert skipped but no row found for url")
	}
	return out, err
}

func (r *InternshipRepo) GetByID(ctx context.Context, id string) (*domain.Internship, error) {
	out, err := scanInternship(r.db.QueryRowContext(ctx, getInternshipSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("Internship not found")
	}
	return out, err
}

func (r *InternshipRepo) List(ctx context.Context) ([]*domain.Internship, error) {
	return r.query(ctx, listInternshipsSQL)
}

func (r *InternshipRepo) ListByCompany(ctx context.Context, companyName string) ([]*domain.Internship, error) {
	return r.query(ctx, listInternshipsByCompanySQL, "%"+strings.TrimSpace(companyName)+"%")
}

func (r *InternshipRepo) query(ctx context.Context, q string, args ...any) ([]*domain.Internship, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Internship{}
	for rows.Next() {
		in, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InternshipRepo) Update(ctx context.Context, in *domain.Internship) (*domain.Internship, error) {
	out, err := scanInternship(r.db.QueryRowContext(ctx, updateInternshipSQL,
		in.ID, in.CompanyName, in.JobDescription, in.URL,
	))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, domain.ErrNotFound("Internship not found")
	case isUniqueViolation(err):
		return nil, domain.ErrConflict("An internship with that URL already exists")
	}
	return out, err
}

func (r *InternshipRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteInternshipSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("Internship not found")
	}
	return nil
}

func (r *InternshipRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countInternshipsSQL).Scan(&n)
	return n, err
}
