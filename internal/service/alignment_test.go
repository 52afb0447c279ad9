package service

import (
	"testing"

	"naijapath/internal/domain"
)

func testCareer() domain.Career {
	return domain.Career{
		ID:          "test_career",
		Title:       "Test Career",
		Description: "Build software with measurable impact on communities.",
		RequiredSkills: []string{
			"Programming", "Problem-solving", "Communication",
		},
		SalaryRange:     domain.SalaryRange{Min: 2_000_000, Max: 12_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthExcellent,
		WorkEnvironment: []string{"Remote work", "Collaborative teams"},
		PersonalityFit:  []string{"Analytical", "Creative"},
		IndustryTags:    []string{"Technology"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandHigh,
			LocalOpportunities: []string{"Startups"},
			AverageSalary:      "₦3M annually",
		},
	}
}

func profileWith(cat domain.Category, tokens ...string) domain.UserProfile {
	return domain.UserProfile{
		Keywords: map[domain.Category][]string{cat: tokens},
		Weights:  map[domain.Category]float64{cat: 1},
	}
}

func TestMatchesTokenSymmetricContainment(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"tech", "technical", true},
		{"technical", "tech", true},
		{"programming", "programming", true},
		{"design", "data", false},
		{"", "data", false},
	}
	for _, c := range cases {
		if got := matchesToken(c.a, c.b); got != c.want {
			t.Fatalf("matchesToken(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestTokenOverlapBoundsAndMonotonicity(t *testing.T) {
	target := "Analytical Curious Detail-oriented Strategic"

	none := tokenOverlap(nil, target)
	if none != 0 {
		t.Fatalf("expected 0 overlap for no tokens, got %v", none)
	}

	one := tokenOverlap([]string{"analytical"}, target)
	two := tokenOverlap([]string{"analytical", "strategic"}, target)
	all := tokenOverlap([]string{"analytical", "strategic", "curious", "detail", "oriented"}, target)

	if one <= 0 || one > 1 {
		t.Fatalf("overlap out of bounds: %v", one)
	}
	if two < one {
		t.Fatalf("adding a matching token must not decrease overlap: %v < %v", two, one)
	}
	if all != 1 {
		t.Fatalf("expected full overlap 1.0, got %v", all)
	}

	// Non-matching tokens never push the score down.
	noisy := tokenOverlap([]string{"analytical", "zzzz"}, target)
	if noisy != one {
		t.Fatalf("non-matching token changed score: %v vs %v", noisy, one)
	}
}

func TestScoreNeutralDefaults(t *testing.T) {
	var s AlignmentScorer
	a := s.Score(domain.UserProfile{}, testCareer())

	if a.Skills != neutralAlignment || a.Personality != neutralAlignment ||
		a.Values != neutralAlignment || a.Environment != neutralAlignment ||
		a.Interests != neutralAlignment {
		t.Fatalf("expected all-neutral alignment for empty profile, got %+v", a)
	}
}

func TestScoreBounds(t *testing.T) {
	var s AlignmentScorer
	profiles := []domain.UserProfile{
		{},
		profileWith(domain.CategorySkills, "programming", "problem", "solving", "communication", "technical"),
		profileWith(domain.CategoryValues, "impact", "salary", "growth", "financial", "learning"),
		profileWith(domain.CategoryInterests, "software", "technology"),
	}
	for _, p := range profiles {
		a := s.Score(p, testCareer())
		for name, v := range map[string]float64{
			"skills": a.Skills, "personality": a.Personality, "values": a.Values,
			"environment": a.Environment, "interests": a.Interests,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("%s alignment out of [0,1]: %v", name, v)
			}
		}
	}
}

func TestSkillsFamilyBonus(t *testing.T) {
	var s AlignmentScorer
	career := testCareer()

	// "zzzz" matches no required-skill word and no family marker.
	without := s.Score(profileWith(domain.CategorySkills, "zzzz"), career)
	with := s.Score(profileWith(domain.CategorySkills, "technical"), career)

	if with.Skills <= without.Skills {
		t.Fatalf("shared skill family must add a bonus: %v <= %v", with.Skills, without.Skills)
	}
}

func TestValuesKeywordBonuses(t *testing.T) {
	var s AlignmentScorer
	career := testCareer()

	base := s.Score(profileWith(domain.CategoryValues, "zzzz"), career).Values
	impact := s.Score(profileWith(domain.CategoryValues, "impact"), career).Values
	financial := s.Score(profileWith(domain.CategoryValues, "financial"), career).Values
	growth := s.Score(profileWith(domain.CategoryValues, "growth"), career).Values

	if impact <= base {
		t.Fatalf("impact co-occurrence must raise values alignment: %v <= %v", impact, base)
	}
	if financial <= base {
		t.Fatalf("financial signal must raise values alignment for high-ceiling careers: %v <= %v", financial, base)
	}
	if growth <= base {
		t.Fatalf("growth signal must raise values alignment for excellent outlook: %v <= %v", growth, base)
	}

	// No financial bonus when the salary ceiling is below the floor.
	modest := career
	modest.SalaryRange.Max = 5_000_000
	if got := s.Score(profileWith(domain.CategoryValues, "financial"), modest).Values; got != base {
		t.Fatalf("expected no financial bonus below salary floor, got %v want %v", got, base)
	}
}

func TestEnvironmentAndPersonalityAlignment(t *testing.T) {
	var s AlignmentScorer
	career := testCareer()

	env := s.Score(profileWith(domain.CategoryWorkEnvironment, "remote", "collaborative"), career)
	if env.Environment <= 0 {
		t.Fatalf("expected positive environment alignment, got %v", env.Environment)
	}

	pers := s.Score(profileWith(domain.CategoryPersonality, "analytical"), career)
	if pers.Personality <= 0 {
		t.Fatalf("expected positive personality alignment, got %v", pers.Personality)
	}
}
