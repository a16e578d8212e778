package fluency

import (
	"math"

	"github.com/internsnow/campus-match/internal/domain"
)

type Level string

const (
	LevelExcellent        Level = "Excellent"
	LevelCompetent        Level = "Competent"
	LevelNeedsImprovement Level = "Needs Improvement"
)

const (
	excellentAt = 80
	competentAt = 40

	// Unanswered marks a question the user skipped.
	Unanswered = -1
)

var levelDescriptions = map[Level]string{
	LevelExcellent:        "Excellent! You have strong AI fluency and practical literacy skills.",
	LevelCompetent:        "Good foundation, but consider reviewing AI concepts and best practices.",
	LevelNeedsImprovement: "We recommend an AI learning supplement, course, or module to build foundational knowledge.",
}

func (l Level) Description() string { return levelDescriptions[l] }

type QuestionResult struct {
	QuestionID int64 `json:"question_id"`
	UserAnswer int   `json:"user_answer"`
	Correct    int   `json:"correct_answer"`
	IsCorrect  bool  `json:"is_correct"`
}

type Result struct {
	Score           int              `json:"score"`
	TotalQuestions  int              `json:"total_questions"`
	Percentage      float64          `json:"percentage"`
	Level           Level            `json:"level"`
	Description     string           `json:"description"`
	QuestionResults []QuestionResult `json:"question_results"`
}

// Score grades answers against questions position by position. A nil or
// missing answer counts as Unanswered. An empty quiz scores 0% so the
// result stays encodable and storable.
func Score(questions []domain.FluencyQuestion, answers []*int) Result {
	res := Result{
		TotalQuestions:  len(questions),
		QuestionResults: make([]QuestionResult, 0, len(questions)),
	}
	for i, q := range questions {
		answer := Unanswered
		if i < len(answers) && answers[i] != nil {
			answer = *answers[i]
		}
		ok := answer == q.CorrectAnswer
		if ok {
			res.Score++
		}
		res.QuestionResults = append(res.QuestionResults, QuestionResult{
			QuestionID: q.ID,
			UserAnswer: answer,
			Correct:    q.CorrectAnswer,
			IsCorrect:  ok,
		})
	}

	res.Level = levelFor(res.Score, res.TotalQuestions)
	res.Description = res.Level.Description()
	if res.TotalQuestions > 0 {
		pct := float64(res.Score) * 100 / float64(res.TotalQuestions)
		res.Percentage = math.Round(pct*100) / 100
	}
	return res
}

// levelFor compares in integers so 4/5 lands on the 80% boundary exactly.
func levelFor(correct, total int) Level {
	switch {
	case total == 0:
		return LevelNeedsImprovement
	case correct*100 >= excellentAt*total:
		return LevelExcellent
	case correct*100 >= competentAt*total:
		return LevelCompetent
	default:
		return LevelNeedsImprovement
	}
}
