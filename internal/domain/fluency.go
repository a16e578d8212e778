package domain

import (
	"strings"
	"time"
)

type QuestionType string

const (
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionMultipleChoice QuestionType = "multiple-choice"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const (
	maxQuestionLen  = 1000
	maxOptionLen    = 255
	maxCategoryLen  = 100
	minQuestionOpts = 2
	maxQuestionOpts = 6
	DefaultCategory = "general"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// FluencyQuestion is one item of the AI fluency quiz. CorrectAnswer is an
// index into Options and never leaves the service in a drawn quiz.
type FluencyQuestion struct {
	ID            int64        `json:"id"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correct_answer"`
	Type          QuestionType `json:"type"`
	Category      string       `json:"category"`
	Difficulty    Difficulty   `json:"difficulty"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type FluencyQuestionInput struct {
	Question      string
	Options       []string
	CorrectAnswer int
	Type          QuestionType
	Category      string
	Difficulty    Difficulty
}

// Validate trims the text fields and returns the copy to store.
// Category and difficulty fall back to general and medium.
func (in FluencyQuestionInput) Validate() (FluencyQuestionInput, error) {
	out := FluencyQuestionInput{
		Question:      strings.TrimSpace(in.Question),
		CorrectAnswer: in.CorrectAnswer,
		Type:          QuestionType(strings.TrimSpace(string(in.Type))),
		Category:      strings.TrimSpace(in.Category),
		Difficulty:    Difficulty(strings.ToLower(strings.TrimSpace(string(in.Difficulty)))),
	}
	for _, o := range in.Options {
		out.Options = append(out.Options, strings.TrimSpace(o))
	}
	if out.Category == "" {
		out.Category = DefaultCategory
	}
	if out.Difficulty == "" {
		out.Difficulty = DifficultyMedium
	}

	meta := map[string]string{}
	if out.Question == "" {
		meta["question"] = "required"
	} else if len(out.Question) > maxQuestionLen {
		meta["question"] = "must be 1000 characters or fewer"
	}
	switch out.Type {
	case QuestionTrueFalse:
		if len(out.Options) != 2 {
			meta["options"] = "true-false questions need exactly 2 options"
		}
	case QuestionMultipleChoice:
		if len(out.Options) < minQuestionOpts || len(out.Options) > maxQuestionOpts {
			meta["options"] = "must have between 2 and 6 options"
		}
	default:
		meta["type"] = "must be true-false or multiple-choice"
	}
	for _, o := range out.Options {
		if o == "" || len(o) > maxOptionLen {
			meta["options"] = "each option must be 1 to 255 characters"
			break
		}
	}
	if out.CorrectAnswer < 0 || out.CorrectAnswer >= len(out.Options) {
		meta["correct_answer"] = "must index one of the options"
	}
	if len(out.Category) > maxCategoryLen {
		meta["category"] = "must be 100 characters or fewer"
	}
	if !out.Difficulty.Valid() {
		meta["difficulty"] = "must be easy, medium or hard"
	}
	if len(meta) > 0 {
		return FluencyQuestionInput{}, ErrValidationMeta("Invalid question", meta)
	}
	return out, nil
}

// FluencyQuestionPatch is a partial update; nil fields keep their value.
type FluencyQuestionPatch struct {
	Question      *string
	Options       []string
	CorrectAnswer *int
	Type          *QuestionType
	Category      *string
	Difficulty    *Difficulty
}

// Apply merges the patch over q and revalidates the result.
func (q *FluencyQuestion) Apply(p FluencyQuestionPatch, now time.Time) error {
	in := FluencyQuestionInput{
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Type:          q.Type,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
	}
	if p.Question != nil {
		in.Question = *p.Question
	}
	if p.Options != nil {
		in.Options = p.Options
	}
	if p.CorrectAnswer != nil {
		in.CorrectAnswer = *p.CorrectAnswer
	}
	if p.Type != nil {
		in.Type = *p.Type
	}
	if p.Category != nil {
		in.Category = *p.Category
	}
	if p.Difficulty != nil {
		in.Difficulty = *p.Difficulty
	}
	clean, err := in.Validate()
	if err != nil {
		return err
	}
	q.Question = clean.Question
	q.Options = clean.Options
	q.CorrectAnswer = clean.CorrectAnswer
	q.Type = clean.Type
	q.Category = clean.Category
	q.Difficulty = clean.Difficulty
	q.UpdatedAt = now.UTC()
	return nil
}

// FluencyResult is a stored quiz attempt.
type FluencyResult struct {
	ID             int64     `json:"id"`
	UserSub        string    `json:"user_sub"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	Level          string    `json:"level"`
	CompletedAt    time.Time `json:"completed_at"`
}
