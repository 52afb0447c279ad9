// Package catalog bundles the static quiz questions and career profiles the
// service ships with. Both tables are read-only for the lifetime of the
// process; callers share the returned slices and must not mutate them.
package catalog

import (
	"errors"
	"fmt"

	"naijapath/internal/domain"
)

var (
	ErrNoQuestions = errors.New("catalog: empty question list")
	ErrNoCareers   = errors.New("catalog: empty career catalog")
)

// Questions returns the bundled quiz in presentation order.
func Questions() []domain.Question {
	return questions
}

// Careers returns the bundled career catalog.
func Careers() []domain.Career {
	return careers
}

var validCategories = map[domain.Category]bool{
	domain.CategoryInterests:       true,
	domain.CategoryValues:          true,
	domain.CategoryWorkEnvironment: true,
	domain.CategorySkills:          true,
	domain.CategoryPersonality:     true,
}

// ValidateQuestions checks the structural invariants every question list must
// hold before it is served or scored against.
func ValidateQuestions(qs []domain.Question) error {
	if len(qs) == 0 {
		return ErrNoQuestions
	}
	seen := make(map[string]bool, len(qs))
	for i, q := range qs {
		if q.ID == "" || q.Text == "" {
			return fmt.Errorf("catalog: question %d missing id or text", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if !validCategories[q.Category] {
			return fmt.Errorf("catalog: question %q has unknown category %q", q.ID, q.Category)
		}
		if q.Weight <= 0 {
			return fmt.Errorf("catalog: question %q has non-positive weight", q.ID)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("catalog: question %q has no options", q.ID)
		}
		switch q.AnswerType {
		case domain.AnswerSingleChoice, domain.AnswerRating:
		case domain.AnswerMultiSelect:
			if q.MaxSelections < 1 {
				return fmt.Errorf("catalog: multi-select question %q needs max_selections >= 1", q.ID)
			}
		default:
			return fmt.Errorf("catalog: question %q has unknown answer type %q", q.ID, q.AnswerType)
		}
	}
	return nil
}

// ValidateCareers checks that every career profile is fully populated.
func ValidateCareers(cs []domain.Career) error {
	if len(cs) == 0 {
		return ErrNoCareers
	}
	seen := make(map[string]bool, len(cs))
	for i, c := range cs {
		if c.ID == "" || c.Title == "" || c.Description == "" {
			return fmt.Errorf("catalog: career %d missing id, title, or description", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("catalog: duplicate career id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.RequiredSkills) == 0 || len(c.EducationRequirements) == 0 ||
			len(c.WorkEnvironment) == 0 || len(c.PersonalityFit) == 0 || len(c.IndustryTags) == 0 {
			return fmt.Errorf("catalog: career %q has an empty attribute list", c.ID)
		}
		if c.SalaryRange.Min <= 0 || c.SalaryRange.Max < c.SalaryRange.Min || c.SalaryRange.Currency == "" {
			return fmt.Errorf("catalog: career %q has invalid salary range", c.ID)
		}
		if len(c.MarketContext.LocalOpportunities) == 0 || c.MarketContext.AverageSalary == "" {
			return fmt.Errorf("catalog: career %q has incomplete market context", c.ID)
		}
	}
	return nil
}
