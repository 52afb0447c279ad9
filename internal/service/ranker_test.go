package service

import (
	"math"
	"testing"

	"naijapath/internal/domain"
)

func matchWith(id, industry string, conf float64) domain.CareerMatch {
	return domain.CareerMatch{
		Career: domain.Career{
			ID:           id,
			Title:        id,
			IndustryTags: []string{industry},
		},
		Confidence: conf,
	}
}

func TestConfidenceCombiner(t *testing.T) {
	full := confidence(domain.AlignmentScores{Skills: 1, Personality: 1, Values: 1, Environment: 1, Interests: 1})
	if math.Abs(full-1.0) > 1e-9 {
		t.Fatalf("expected full alignment to give confidence 1.0, got %v", full)
	}

	zero := confidence(domain.AlignmentScores{})
	if math.Abs(zero-confidenceBaseline) > 1e-9 {
		t.Fatalf("expected zero alignment to give the baseline %v, got %v", confidenceBaseline, zero)
	}

	neutral := confidence(domain.AlignmentScores{
		Skills: neutralAlignment, Personality: neutralAlignment, Values: neutralAlignment,
		Environment: neutralAlignment, Interests: neutralAlignment,
	})
	if neutral <= zero || neutral >= full {
		t.Fatalf("neutral confidence should sit between baseline and full, got %v", neutral)
	}
}

func TestRankAndDiversifyKeepsTopAndSpansIndustries(t *testing.T) {
	matches := []domain.CareerMatch{
		matchWith("tech1", "Technology", 0.9),
		matchWith("tech2", "Technology", 0.85),
		matchWith("tech3", "Technology", 0.8),
		matchWith("biz", "Business", 0.5),
		matchWith("design", "Design", 0.45),
		matchWith("content", "Content", 0.2),
	}

	picked := rankAndDiversify(matches, 5)
	if len(picked) != 5 {
		t.Fatalf("expected 5 picks, got %d", len(picked))
	}
	if picked[0].Career.ID != "tech1" {
		t.Fatalf("top match must always be kept first, got %s", picked[0].Career.ID)
	}

	industries := map[string]bool{}
	for _, m := range picked[:3] {
		industries[m.Career.PrimaryIndustry()] = true
	}
	if len(industries) < 2 {
		t.Fatalf("top 3 must span at least 2 industries, got %v", industries)
	}

	// Backfill brings the highest remaining scores after industry picks.
	if picked[1].Career.ID != "biz" || picked[2].Career.ID != "design" {
		t.Fatalf("expected unseen industries next, got %s, %s", picked[1].Career.ID, picked[2].Career.ID)
	}
	if picked[3].Career.ID != "tech2" || picked[4].Career.ID != "tech3" {
		t.Fatalf("expected score-ordered backfill, got %s, %s", picked[3].Career.ID, picked[4].Career.ID)
	}
}

func TestRankAndDiversifySmallInputs(t *testing.T) {
	if got := rankAndDiversify(nil, 5); got != nil {
		t.Fatalf("expected nil for no matches, got %v", got)
	}

	one := rankAndDiversify([]domain.CareerMatch{matchWith("solo", "Technology", 0.4)}, 5)
	if len(one) != 1 || one[0].Career.ID != "solo" {
		t.Fatalf("expected the single match back, got %v", one)
	}

	three := rankAndDiversify([]domain.CareerMatch{
		matchWith("a", "Technology", 0.2),
		matchWith("b", "Design", 0.6),
		matchWith("c", "Business", 0.4),
	}, 5)
	if len(three) != 3 {
		t.Fatalf("expected all 3 matches, got %d", len(three))
	}
	if three[0].Career.ID != "b" {
		t.Fatalf("expected highest confidence first, got %s", three[0].Career.ID)
	}
}

func TestRankAndDiversifyDeterministic(t *testing.T) {
	matches := []domain.CareerMatch{
		matchWith("a", "Technology", 0.5),
		matchWith("b", "Design", 0.5),
		matchWith("c", "Business", 0.5),
		matchWith("d", "Content", 0.5),
	}

	first := rankAndDiversify(matches, 3)
	for i := 0; i < 10; i++ {
		again := rankAndDiversify(matches, 3)
		for j := range first {
			if first[j].Career.ID != again[j].Career.ID {
				t.Fatalf("ordering diverged on run %d: %v vs %v", i, first, again)
			}
		}
	}

	// Equal confidences keep input order (stable sort, no randomness).
	if first[0].Career.ID != "a" || first[1].Career.ID != "b" || first[2].Career.ID != "c" {
		t.Fatalf("expected stable input order for ties, got %v", first)
	}
}
