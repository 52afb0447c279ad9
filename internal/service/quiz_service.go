package service

import (
	"go.uber.org/zap"

	"naijapath/internal/domain"
)

// QuizService serves the question list and its presentation metadata.
type QuizService struct {
	questions []domain.Question
	logger    *zap.Logger
}

func NewQuizService(questions []domain.Question, logger *zap.Logger) *QuizService {
	return &QuizService{questions: questions, logger: logger}
}

// Questions returns the quiz in presentation order. Callers must not mutate
// the returned slice.
func (s *QuizService) Questions() []domain.Question {
	return s.questions
}

// EstimatedMinutes is the rough completion time shown on the welcome screen.
func (s *QuizService) EstimatedMinutes() int {
	minutes := len(s.questions) / 3
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// BuildResponses pairs each question with its positionally aligned answer and
// attaches the category/weight context scoring needs. Malformed input never
// fails: missing answers and shape mismatches become empty answers, and
// multi-select overflows are truncated to the question's cap, so a bad answer
// degrades one category instead of aborting the analysis.
func BuildResponses(questions []domain.Question, answers []domain.Answer) []domain.Response {
	responses := make([]domain.Response, 0, len(questions))
	for i, q := range questions {
		var a domain.Answer
		if i < len(answers) {
			a = answers[i]
		}
		if !a.MatchesType(q.AnswerType) {
			a = domain.Answer{}
		}
		a = sanitizeAnswer(q, a)
		responses = append(responses, domain.Response{
			QuestionID: q.ID,
			Category:   q.Category,
			Weight:     q.Weight,
			Answer:     a,
		})
	}
	return responses
}

func sanitizeAnswer(q domain.Question, a domain.Answer) domain.Answer {
	switch q.AnswerType {
	case domain.AnswerMultiSelect:
		if q.MaxSelections > 0 && len(a.Selections) > q.MaxSelections {
			a.Selections = a.Selections[:q.MaxSelections]
		}
	case domain.AnswerRating:
		if len(a.Ratings) == 0 {
			break
		}
		// Only listed factors count, and ratings are clamped to the scale.
		listed := make(map[string]bool, len(q.Options))
		for _, factor := range q.Options {
			listed[factor] = true
		}
		cleaned := make(map[string]int, len(a.Ratings))
		for factor, rating := range a.Ratings {
			if !listed[factor] {
				continue
			}
			if rating < 1 {
				rating = 1
			}
			if rating > 5 {
				rating = 5
			}
			cleaned[factor] = rating
		}
		a.Ratings = cleaned
	}
	return a
}
