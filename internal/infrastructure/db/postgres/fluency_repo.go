package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/internsnow/campus-match/internal/domain"
)

type FluencyRepo struct {
	db *sql.DB
}

func NewFluencyRepo(db *sql.DB) *FluencyRepo { return &FluencyRepo{db: db} }

func scanFluencyQuestion(row rowScanner) (*domain.FluencyQuestion, error) {
	var (
		q       domain.FluencyQuestion
		options []byte
	)
	if err := row.Scan(&q.ID, &q.Question, &options, &q.CorrectAnswer, &q.Type,
		&q.Category, &q.Difficulty, &q.IsActive, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(options, &q.Options); err != nil {
		return nil, fmt.Errorf("fluency question %d options: %w", q.ID, err)
	}
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()
	return &q, nil
}

func scanFluencyResult(row rowScanner) (*domain.FluencyResult, error) {
	var r domain.FluencyResult
	if err := row.Scan(&r.ID, &r.UserSub, &r.Score, &r.TotalQuestions, &r.Percentage, &r.Level, &r.CompletedAt); err != nil {
		return nil, err
	}
	r.CompletedAt = r.CompletedAt.UTC()
	return &r, nil
}

// encodeOptions goes over the wire as text; pq would send []byte as bytea.
func encodeOptions(opts []string) (string, error) {
	if opts == nil {
		opts = []string{}
	}
	b, err := json.Marshal(opts)
	return string(b), err
}

// CreateQuestion inserts q and sets its generated id.
func (r *FluencyRepo) CreateQuestion(ctx context.Context, q *domain.FluencyQuestion) error {
	opts, err := encodeOptions(q.Options)
	if err != nil {
		return err
	}
	return r.db.QueryRowContext(ctx, insertFluencyQuestionSQL,
		q.Question, opts, q.CorrectAnswer, q.Type, q.Category, q.Difficulty, q.IsActive, q.CreatedAt, q.UpdatedAt,
	).Scan(&q.ID)
}

func (r *FluencyRepo) GetQuestion(ctx context.Context, id int64) (*domain.FluencyQuestion, error) {
	q, err := scanFluencyQuestion(r.db.QueryRowContext(ctx, getFluencyQuestionSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("Question not found")
	}
	return q, err
}

func (r *FluencyRepo) UpdateQuestion(ctx context.Context, q *domain.FluencyQuestion) error {
	opts, err := encodeOptions(q.Options)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, updateFluencyQuestionSQL,
		q.ID, q.Question, opts, q.CorrectAnswer, q.Type, q.Category, q.Difficulty, q.UpdatedAt,
	)
	return questionTouched(res, err)
}

func (r *FluencyRepo) DeactivateQuestion(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, deactivateFluencyQuestionSQL, id, at)
	return questionTouched(res, err)
}

func (r *FluencyRepo) ActiveQuestions(ctx context.Context, category string) ([]*domain.FluencyQuestion, error) {
	return r.queryQuestions(ctx, listActiveFluencyQuestionsSQL, category)
}

func (r *FluencyRepo) RandomQuestions(ctx context.Context, count int, difficulty domain.Difficulty) ([]*domain.FluencyQuestion, error) {
	return r.queryQuestions(ctx, randomFluencyQuestionsSQL, count, string(difficulty))
}

func (r *FluencyRepo) QuestionsByIDs(ctx context.Context, ids []int64) ([]*domain.FluencyQuestion, error) {
	return r.queryQuestions(ctx, fluencyQuestionsByIDsSQL, pq.Array(ids))
}

func (r *FluencyRepo) CountQuestions(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countFluencyQuestionsSQL).Scan(&n)
	return n, err
}

func (r *FluencyRepo) queryQuestions(ctx context.Context, q string, args ...any) ([]*domain.FluencyQuestion, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.FluencyQuestion{}
	for rows.Next() {
		fq, err := scanFluencyQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveResult inserts the attempt and sets its generated id.
func (r *FluencyRepo) SaveResult(ctx context.Context, res *domain.FluencyResult) error {
	return r.db.QueryRowContext(ctx, insertFluencyResultSQL,
		res.UserSub, res.Score, res.TotalQuestions, res.Percentage, res.Level, res.CompletedAt,
	).Scan(&res.ID)
}

func (r *FluencyRepo) ResultsFor(ctx context.Context, userSub string) ([]*domain.FluencyResult, error) {
	rows, err := r.db.QueryContext(ctx, listFluencyResultsSQL, userSub)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.FluencyResult{}
	for rows.Next() {
		res, err := scanFluencyResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FluencyRepo) LatestResultFor(ctx context.Context, userSub string) (*domain.FluencyResult, error) {
	res, err := scanFluencyResult(r.db.QueryRowContext(ctx, latestFluencyResultSQL, userSub))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("No fluency results")
	}
	return res, err
}

// questionTouched maps a guarded UPDATE that hit no active row to not found.
func questionTouched(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("Question not found")
	}
	return nil
}
