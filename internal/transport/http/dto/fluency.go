package dto

import (
	"github.com/internsnow/campus-match/internal/domain"
)

// FluencyQuestionResp is a quiz question as shown to the taker, without the answer.
type FluencyQuestionResp struct {
	ID         int64               `json:"id"`
	Question   string              `json:"question"`
	Options    []string            `json:"options"`
	Type       domain.QuestionType `json:"type"`
	Category   string              `json:"category"`
	Difficulty domain.Difficulty   `json:"difficulty"`
}

func ToFluencyQuestionResp(q *domain.FluencyQuestion) FluencyQuestionResp {
	return FluencyQuestionResp{
		ID:         q.ID,
		Question:   q.Question,
		Options:    q.Options,
		Type:       q.Type,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

type FluencySubmitReq struct {
	QuestionIDs []int64 `json:"question_ids" validate:"required,max=50,dive,gt=0"`
	// Answers are option indexes in question order; null marks a skipped question.
	Answers []*int `json:"answers" validate:"max=50"`
}

// FluencyQuestionReq serves both create and partial update.
type FluencyQuestionReq struct {
	Question      *string  `json:"question"`
	Options       []string `json:"options" validate:"omitempty,max=20"`
	CorrectAnswer *int     `json:"correct_answer"`
	Type          *string  `json:"type"`
	Category      *string  `json:"category"`
	Difficulty    *string  `json:"difficulty"`
}

func (r FluencyQuestionReq) ToInput() (domain.FluencyQuestionInput, error) {
	if r.CorrectAnswer == nil {
		return domain.FluencyQuestionInput{}, domain.ErrValidationMeta("Invalid question", map[string]string{
			"correct_answer": "required",
		})
	}
	return domain.FluencyQuestionInput{
		Question:      deref(r.Question),
		Options:       r.Options,
		CorrectAnswer: *r.CorrectAnswer,
		Type:          domain.QuestionType(deref(r.Type)),
		Category:      deref(r.Category),
		Difficulty:    domain.Difficulty(deref(r.Difficulty)),
	}, nil
}

func (r FluencyQuestionReq) ToPatch() domain.FluencyQuestionPatch {
	p := domain.FluencyQuestionPatch{
		Question:      r.Question,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		Category:      r.Category,
	}
	if r.Type != nil {
		t := domain.QuestionType(*r.Type)
		p.Type = &t
	}
	if r.Difficulty != nil {
		d := domain.Difficulty(*r.Difficulty)
		p.Difficulty = &d
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
