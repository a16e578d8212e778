package postgres

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/domain"
)

type sampleQuestion struct {
	question   string
	options    []string
	correct    int
	kind       domain.QuestionType
	category   string
	difficulty domain.Difficulty
}

var trueFalse = []string{"True", "False"}

// sampleFluencyQuestions is the starter quiz bank, in display order.
var sampleFluencyQuestions = []sampleQuestion{
	{"AI tools like ChatGPT always provide accurate and unbiased information.", trueFalse, 1, domain.QuestionTrueFalse, "literacy", domain.DifficultyEasy},
	{"It's okay to paste confidential company data into a public AI chatbot if it helps you work faster.", trueFalse, 1, domain.QuestionTrueFalse, "ethics", domain.DifficultyEasy},
	{"AI can recognize patterns in data but doesn't understand meaning the way humans do.", trueFalse, 0, domain.QuestionTrueFalse, "concepts", domain.DifficultyMedium},
	{"If an AI makes a mistake, the person using it is still responsible for the outcome.", trueFalse, 0, domain.QuestionTrueFalse, "ethics", domain.DifficultyEasy},
	{"AI can help draft emails, reports, or resumes, but human review is still necessary.", trueFalse, 0, domain.QuestionTrueFalse, "practice", domain.DifficultyEasy},
	{"Using AI to generate ideas can be helpful, but you should always check for originality and plagiarism.", trueFalse, 0, domain.QuestionTrueFalse, "ethics", domain.DifficultyEasy},
	{"AI models can learn new facts automatically after they're released to the public.", trueFalse, 1, domain.QuestionTrueFalse, "concepts", domain.DifficultyMedium},
	{"'Artificial intelligence' and 'automation' mean exactly the same thing.", trueFalse, 1, domain.QuestionTrueFalse, "concepts", domain.DifficultyEasy},
	{"Knowing how to prompt AI tools effectively is a valuable professional skill.", trueFalse, 0, domain.QuestionTrueFalse, "practice", domain.DifficultyEasy},
	{"AI Models can be open sourced similarly to other software.", trueFalse, 0, domain.QuestionTrueFalse, "concepts", domain.DifficultyMedium},
	{"What does AI stand for in the context of technology?", []string{"Automated Intelligence", "Artificial Intelligence", "Advanced Integration", "Algorithmic Interface"}, 1, domain.QuestionMultipleChoice, "literacy", domain.DifficultyEasy},
	{"Which of the following is an example of a Large Language Model (LLM)?", []string{"Microsoft Excel", "Google Maps", "ChatGPT", "Adobe Photoshop"}, 2, domain.QuestionMultipleChoice, "literacy", domain.DifficultyEasy},
	{"What is a 'prompt' in the context of AI tools?", []string{"A notification from the AI system", "An error message", "Input text or instructions given to an AI model", "The speed at which AI responds"}, 2, domain.QuestionMultipleChoice, "practice", domain.DifficultyEasy},
	{"Which task CAN'T current AI tools reliably perform?", []string{"Writing code based on descriptions", "Translating text between languages", "Making complex ethical decisions independently", "Generating images from text descriptions"}, 2, domain.QuestionMultipleChoice, "concepts", domain.DifficultyMedium},
	{"What is 'machine learning'?", []string{"Teaching humans how to use machines", "A type of computer hardware", "AI systems that improve from experience without explicit programming", "The process of assembling computers"}, 2, domain.QuestionMultipleChoice, "concepts", domain.DifficultyMedium},
	{"When using AI-generated content in professional work, you should:", []string{"Always use it exactly as generated", "Review, verify, and edit before using", "Never use AI-generated content", "Only use it for creative projects"}, 1, domain.QuestionMultipleChoice, "practice", domain.DifficultyMedium},
	{"What is 'bias' in AI systems?", []string{"The electrical charge in computer chips", "Unfair or inaccurate outputs based on training data", "The speed of AI processing", "A security feature"}, 1, domain.QuestionMultipleChoice, "ethics", domain.DifficultyMedium},
	{"Which is a best practice when writing prompts for AI?", []string{"Be as vague as possible", "Use only single words", "Provide clear, specific instructions with context", "Always use technical jargon"}, 2, domain.QuestionMultipleChoice, "practice", domain.DifficultyMedium},
	{"What does 'generative AI' refer to?", []string{"AI that only analyzes existing data", "AI that creates new content like text, images, or code", "The first generation of AI systems", "AI used in power generation"}, 1, domain.QuestionMultipleChoice, "concepts", domain.DifficultyHard},
	{"Why is it important to fact-check AI-generated information?", []string{"AI always provides incorrect information", "AI can 'hallucinate' or generate plausible but false information", "It's not important, AI is always accurate", "To slow down the work process"}, 1, domain.QuestionMultipleChoice, "ethics", domain.DifficultyHard},
}

func seedFluencyQuestions(ctx context.Context, repo *FluencyRepo, now time.Time) (int, error) {
	n, err := repo.CountQuestions(ctx)
	if err != nil || n > 0 {
		return 0, err
	}
	seeded := 0
	for i, s := range sampleFluencyQuestions {
		clean, err := domain.FluencyQuestionInput{
			Question:      s.question,
			Options:       s.options,
			CorrectAnswer: s.correct,
			Type:          s.kind,
			Category:      s.category,
			Difficulty:    s.difficulty,
		}.Validate()
		if err != nil {
			return seeded, err
		}
		q := &domain.FluencyQuestion{
			Question:      clean.Question,
			Options:       clean.Options,
			CorrectAnswer: clean.CorrectAnswer,
			Type:          clean.Type,
			Category:      clean.Category,
			Difficulty:    clean.Difficulty,
			IsActive:      true,
			CreatedAt:     now.UTC(),
			UpdatedAt:     now.UTC(),
		}
		if err := repo.CreateQuestion(ctx, q); err != nil {
			zlog.Error().Err(err).Int("index", i).Msg("seed fluency question failed")
			continue
		}
		seeded++
	}
	return seeded, nil
}
