package fluency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internsnow/campus-match/internal/domain"
)

func fiveQuestions() []domain.FluencyQuestion {
	qs := make([]domain.FluencyQuestion, 5)
	for i := range qs {
		qs[i] = domain.FluencyQuestion{ID: int64(i + 1), Options: []string{"True", "False"}, CorrectAnswer: 0}
	}
	return qs
}

func answersWithCorrect(n, total int) []*int {
	out := make([]*int, total)
	for i := range out {
		v := 1
		if i < n {
			v = 0
		}
		out[i] = &v
	}
	return out
}

func TestScore_Levels(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		pct     float64
		level   Level
	}{
		{"all_correct", 5, 100, LevelExcellent},
		{"eighty_percent_is_excellent", 4, 80, LevelExcellent},
		{"sixty_percent_is_competent", 3, 60, LevelCompetent},
		{"forty_percent_is_competent", 2, 40, LevelCompetent},
		{"twenty_percent_needs_improvement", 1, 20, LevelNeedsImprovement},
		{"none_correct", 0, 0, LevelNeedsImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(fiveQuestions(), answersWithCorrect(tt.correct, 5))

			assert.Equal(t, tt.correct, res.Score)
			assert.Equal(t, 5, res.TotalQuestions)
			assert.InDelta(t, tt.pct, res.Percentage, 0.001)
			assert.Equal(t, tt.level, res.Level)
			assert.Equal(t, tt.level.Description(), res.Description)
		})
	}
}

func TestScore_Unanswered(t *testing.T) {
	one := 0
	t.Run("nil_answers_are_wrong", func(t *testing.T) {
		res := Score(fiveQuestions(), []*int{&one, nil, nil, nil, nil})

		assert.Equal(t, 1, res.Score)
		require.Len(t, res.QuestionResults, 5)
		assert.Equal(t, Unanswered, res.QuestionResults[1].UserAnswer)
		assert.False(t, res.QuestionResults[1].IsCorrect)
	})

	t.Run("short_answer_list_pads_with_unanswered", func(t *testing.T) {
		res := Score(fiveQuestions(), []*int{&one})

		assert.Equal(t, 1, res.Score)
		assert.Equal(t, Unanswered, res.QuestionResults[4].UserAnswer)
		assert.InDelta(t, 20, res.Percentage, 0.001)
	})
}

func TestScore_PerQuestionResults(t *testing.T) {
	qs := []domain.FluencyQuestion{
		{ID: 11, CorrectAnswer: 2},
		{ID: 12, CorrectAnswer: 0},
	}
	a, b := 2, 3

	res := Score(qs, []*int{&a, &b})

	assert.Equal(t, []QuestionResult{
		{QuestionID: 11, UserAnswer: 2, Correct: 2, IsCorrect: true},
		{QuestionID: 12, UserAnswer: 3, Correct: 0, IsCorrect: false},
	}, res.QuestionResults)
}

func TestScore_NoQuestions(t *testing.T) {
	res := Score(nil, nil)

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.TotalQuestions)
	assert.Equal(t, 0.0, res.Percentage)
	assert.Equal(t, LevelNeedsImprovement, res.Level)
	assert.NotNil(t, res.QuestionResults)
	assert.Empty(t, res.QuestionResults)
}

func TestScore_PercentageIsRounded(t *testing.T) {
	qs := []domain.FluencyQuestion{{ID: 1}, {ID: 2}, {ID: 3}}
	zero := 0

	res := Score(qs, []*int{&zero, nil, nil})

	assert.Equal(t, 33.33, res.Percentage)
	assert.Equal(t, LevelNeedsImprovement, res.Level)
}
