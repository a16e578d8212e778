package fluency

import (
	"context"
	"strconv"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/contracts"
	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/metrics"
)

const (
	DefaultQuizSize = 20
	MaxQuizSize     = 50
)

type Service struct {
	repo  Repo
	pub   Publisher
	clock Clock
}

func New(repo Repo, clock Clock, pub Publisher) *Service {
	return &Service{repo: repo, pub: pub, clock: clock}
}

func requireActor(actor domain.Actor) error {
	if strings.TrimSpace(actor.Sub) == "" {
		return domain.ErrUnauthorized("Unauthorized")
	}
	return nil
}

func requireAdmin(actor domain.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin {
		return domain.ErrForbidden("only admins can manage fluency questions")
	}
	return nil
}

// Draw picks a random quiz of active questions. Count defaults to
// DefaultQuizSize and is capped at MaxQuizSize.
func (s *Service) Draw(ctx context.Context, count int, difficulty string) ([]*domain.FluencyQuestion, error) {
	if count <= 0 {
		count = DefaultQuizSize
	}
	if count > MaxQuizSize {
		count = MaxQuizSize
	}
	d := domain.Difficulty(strings.ToLower(strings.TrimSpace(difficulty)))
	if d != "" && !d.Valid() {
		return nil, domain.ErrInvalidParam("query", "difficulty", "must be easy, medium or hard")
	}
	return s.repo.RandomQuestions(ctx, count, d)
}

type Submission struct {
	QuestionIDs []int64
	// Answers line up with QuestionIDs; nil means skipped.
	Answers []*int
}

// Submit grades a quiz in the order the questions were shown. Signed-in
// users get the attempt stored; anonymous callers only get the grade.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, sub Submission) (Result, error) {
	if len(sub.QuestionIDs) == 0 {
		return Result{}, domain.ErrValidation("question_ids is required")
	}
	if len(sub.QuestionIDs) > MaxQuizSize {
		return Result{}, domain.ErrValidation("too many questions")
	}
	if len(sub.Answers) > len(sub.QuestionIDs) {
		return Result{}, domain.ErrValidation("more answers than questions")
	}
	seen := make(map[int64]struct{}, len(sub.QuestionIDs))
	for _, id := range sub.QuestionIDs {
		if _, dup := seen[id]; dup {
			return Result{}, domain.ErrValidationMeta("duplicate question", map[string]string{
				"question_ids": strconv.FormatInt(id, 10),
			})
		}
		seen[id] = struct{}{}
	}

	found, err := s.repo.QuestionsByIDs(ctx, sub.QuestionIDs)
	if err != nil {
		return Result{}, err
	}
	byID := make(map[int64]*domain.FluencyQuestion, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}
	ordered := make([]domain.FluencyQuestion, 0, len(sub.QuestionIDs))
	for _, id := range sub.QuestionIDs {
		q, ok := byID[id]
		if !ok {
			return Result{}, domain.ErrValidationMeta("unknown question", map[string]string{
				"question_ids": strconv.FormatInt(id, 10),
			})
		}
		ordered = append(ordered, *q)
	}

	res := Score(ordered, sub.Answers)
	metrics.RecordFluencySubmission(string(res.Level))

	if strings.TrimSpace(actor.Sub) == "" {
		return res, nil
	}
	stored := &domain.FluencyResult{
		UserSub:        actor.Sub,
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		Percentage:     res.Percentage,
		Level:          string(res.Level),
		CompletedAt:    s.clock.Now().UTC(),
	}
	if err := s.repo.SaveResult(ctx, stored); err != nil {
		return Result{}, err
	}
	zlog.Info().Str("actor", actor.Sub).Str("level", stored.Level).Int("score", stored.Score).Msg("fluency quiz graded")
	s.publish(ctx, stored)
	return res, nil
}

func (s *Service) Results(ctx context.Context, actor domain.Actor) ([]*domain.FluencyResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.repo.ResultsFor(ctx, actor.Sub)
}

func (s *Service) Latest(ctx context.Context, actor domain.Actor) (*domain.FluencyResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.repo.LatestResultFor(ctx, actor.Sub)
}

func (s *Service) ListQuestions(ctx context.Context, actor domain.Actor, category string) ([]*domain.FluencyQuestion, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ActiveQuestions(ctx, strings.TrimSpace(category))
}

func (s *Service) CreateQuestion(ctx context.Context, actor domain.Actor, in domain.FluencyQuestionInput) (*domain.FluencyQuestion, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	clean, err := in.Validate()
	if err != nil {
		return nil, err
	}
	now := s.clock.Now().UTC()
	q := &domain.FluencyQuestion{
		Question:      clean.Question,
		Options:       clean.Options,
		CorrectAnswer: clean.CorrectAnswer,
		Type:          clean.Type,
		Category:      clean.Category,
		Difficulty:    clean.Difficulty,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateQuestion(ctx, q); err != nil {
		return nil, err
	}
	zlog.Info().Int64("question_id", q.ID).Str("actor", actor.Sub).Msg("fluency question created")
	return q, nil
}

func (s *Service) UpdateQuestion(ctx context.Context, actor domain.Actor, id int64, p domain.FluencyQuestionPatch) (*domain.FluencyQuestion, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	q, err := s.repo.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := q.Apply(p, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateQuestion(ctx, q); err != nil {
		return nil, err
	}
	zlog.Info().Int64("question_id", id).Str("actor", actor.Sub).Msg("fluency question updated")
	return q, nil
}

// DeactivateQuestion hides a question from new quizzes; past results keep their scores.
func (s *Service) DeactivateQuestion(ctx context.Context, actor domain.Actor, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.DeactivateQuestion(ctx, id, s.clock.Now().UTC()); err != nil {
		return err
	}
	zlog.Info().Int64("question_id", id).Str("actor", actor.Sub).Msg("fluency question deactivated")
	return nil
}

func (s *Service) publish(ctx context.Context, r *domain.FluencyResult) {
	if s.pub == nil {
		return
	}
	env := contracts.NewEnvelope(ctx, contracts.FluencyPayload{
		UserSub:        r.UserSub,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		Percentage:     r.Percentage,
		Level:          r.Level,
	}, s.clock.Now())
	if err := s.pub.PublishEvent(ctx, contracts.RKFluencyCompleted, env); err != nil {
		zlog.Warn().Err(err).Str("routing_key", contracts.RKFluencyCompleted).Msg("publish failed")
	}
}
