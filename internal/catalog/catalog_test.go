package catalog

import (
	"testing"

	"naijapath/internal/domain"
)

func TestBundledQuestionsAreValid(t *testing.T) {
	qs := Questions()
	if err := ValidateQuestions(qs); err != nil {
		t.Fatalf("bundled questions must validate, got %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 bundled questions, got %d", len(qs))
	}

	perCategory := make(map[domain.Category]int)
	for _, q := range qs {
		perCategory[q.Category]++
	}
	for _, cat := range domain.Categories {
		if perCategory[cat] != 3 {
			t.Fatalf("expected 3 questions for category %s, got %d", cat, perCategory[cat])
		}
	}
}

func TestBundledCareersAreValid(t *testing.T) {
	cs := Careers()
	if err := ValidateCareers(cs); err != nil {
		t.Fatalf("bundled careers must validate, got %v", err)
	}
	if len(cs) != 8 {
		t.Fatalf("expected 8 bundled careers, got %d", len(cs))
	}

	industries := make(map[string]bool)
	for _, c := range cs {
		industries[c.PrimaryIndustry()] = true
	}
	if len(industries) < 3 {
		t.Fatalf("catalog should span at least 3 primary industries, got %d", len(industries))
	}
}

func TestValidateQuestionsRejectsBadData(t *testing.T) {
	if err := ValidateQuestions(nil); err != ErrNoQuestions {
		t.Fatalf("expected ErrNoQuestions for empty list, got %v", err)
	}

	bad := []domain.Question{{
		ID:         "q1",
		Text:       "pick one",
		Category:   domain.CategoryInterests,
		Weight:     1,
		AnswerType: domain.AnswerMultiSelect,
		Options:    []string{"a", "b"},
		// MaxSelections missing
	}}
	if err := ValidateQuestions(bad); err == nil {
		t.Fatalf("expected error for multi-select without max_selections")
	}

	dup := []domain.Question{
		{ID: "q1", Text: "a", Category: domain.CategoryValues, Weight: 1, AnswerType: domain.AnswerSingleChoice, Options: []string{"x"}},
		{ID: "q1", Text: "b", Category: domain.CategoryValues, Weight: 1, AnswerType: domain.AnswerSingleChoice, Options: []string{"x"}},
	}
	if err := ValidateQuestions(dup); err == nil {
		t.Fatalf("expected error for duplicate question id")
	}
}

func TestValidateCareersRejectsBadData(t *testing.T) {
	if err := ValidateCareers(nil); err != ErrNoCareers {
		t.Fatalf("expected ErrNoCareers for empty catalog, got %v", err)
	}

	c := Careers()[0]
	c.RequiredSkills = nil
	if err := ValidateCareers([]domain.Career{c}); err == nil {
		t.Fatalf("expected error for career without required skills")
	}

	c = Careers()[0]
	c.SalaryRange.Max = c.SalaryRange.Min - 1
	if err := ValidateCareers([]domain.Career{c}); err == nil {
		t.Fatalf("expected error for inverted salary range")
	}
}
