package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"naijapath/internal/domain"
)

// CareerAnalysisService is the scoring engine: it turns one quiz submission
// into ranked career matches with narrative detail. The question list and
// career catalog are fixed at construction and shared read-only across
// requests; every analysis allocates its own profile and matches, so
// concurrent submissions never share mutable state.
type CareerAnalysisService struct {
	questions []domain.Question
	careers   []domain.Career
	builder   ProfileBuilder
	scorer    AlignmentScorer
	narrative NarrativeBuilder
	logger    *zap.Logger
}

var (
	ErrEmptyQuestionList  = errors.New("career analysis: empty question list")
	ErrEmptyCareerCatalog = errors.New("career analysis: empty career catalog")
)

// NewCareerAnalysisService rejects an empty question list or catalog up
// front: both are configuration errors, not runtime conditions.
func NewCareerAnalysisService(questions []domain.Question, careers []domain.Career, logger *zap.Logger) (*CareerAnalysisService, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionList
	}
	if len(careers) == 0 {
		return nil, ErrEmptyCareerCatalog
	}
	return &CareerAnalysisService{
		questions: questions,
		careers:   careers,
		logger:    logger,
	}, nil
}

// Analyze scores the full catalog against one answer set and returns the
// ranked, diversified matches plus top-level recommendations. Deterministic:
// identical answers always produce identical scores and ordering. Missing or
// malformed answers degrade their category to the neutral default instead of
// failing the analysis.
func (s *CareerAnalysisService) Analyze(answers []domain.Answer) (domain.AnalysisResult, error) {
	if s == nil || len(s.questions) == 0 {
		return domain.AnalysisResult{}, ErrEmptyQuestionList
	}
	if len(s.careers) == 0 {
		return domain.AnalysisResult{}, ErrEmptyCareerCatalog
	}

	responses := BuildResponses(s.questions, answers)
	profile := s.builder.Build(responses)

	matches := make([]domain.CareerMatch, 0, len(s.careers))
	for _, career := range s.careers {
		alignment := s.scorer.Score(profile, career)
		conf := confidence(alignment)
		match := domain.CareerMatch{
			Career:       career,
			Confidence:   conf,
			MatchPercent: int(conf*100 + 0.5),
			Alignment:    alignment,
		}
		match.SkillGaps = s.narrative.SkillGaps(profile, career)
		match.Reasons = s.narrative.Reasons(alignment, career)
		match.NextSteps = s.narrative.NextSteps(career, match.SkillGaps)
		matches = append(matches, match)
	}

	ranked := rankAndDiversify(matches, resultSize)
	result := domain.AnalysisResult{
		ID:              uuid.NewString(),
		Matches:         ranked,
		Profile:         profile,
		Recommendations: s.narrative.Recommendations(ranked),
		CreatedAt:       time.Now().UTC(),
	}

	if s.logger != nil {
		s.logger.Info("career analysis completed",
			zap.String("result_id", result.ID),
			zap.Int("answered", countAnswered(responses)),
			zap.Int("matches", len(ranked)),
			zap.String("top_match", ranked[0].Career.ID),
			zap.Float64("top_confidence", ranked[0].Confidence),
		)
	}
	return result, nil
}

func countAnswered(responses []domain.Response) int {
	n := 0
	for _, r := range responses {
		if !r.Answer.IsEmpty() {
			n++
		}
	}
	return n
}
