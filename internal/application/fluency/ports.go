package fluency

import (
	"context"
	"time"

	"github.com/internsnow/campus-match/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type Repo interface {
	CreateQuestion(ctx context.Context, q *domain.FluencyQuestion) error
	GetQuestion(ctx context.Context, id int64) (*domain.FluencyQuestion, error)
	UpdateQuestion(ctx context.Context, q *domain.FluencyQuestion) error
	DeactivateQuestion(ctx context.Context, id int64, at time.Time) error
	// ActiveQuestions filters by category when it is non-empty.
	ActiveQuestions(ctx context.Context, category string) ([]*domain.FluencyQuestion, error)
	// RandomQuestions draws active questions; an empty difficulty means any.
	RandomQuestions(ctx context.Context, count int, difficulty domain.Difficulty) ([]*domain.FluencyQuestion, error)
	// QuestionsByIDs returns the active questions among ids in any order.
	QuestionsByIDs(ctx context.Context, ids []int64) ([]*domain.FluencyQuestion, error)

	SaveResult(ctx context.Context, r *domain.FluencyResult) error
	ResultsFor(ctx context.Context, userSub string) ([]*domain.FluencyResult, error)
	LatestResultFor(ctx context.Context, userSub string) (*domain.FluencyResult, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}
