package service

import (
	"sort"

	"naijapath/internal/domain"
)

// Dimension weights for the confidence combiner. Must sum to 1.0.
const (
	weightSkills      = 0.25
	weightPersonality = 0.20
	weightValues      = 0.20
	weightEnvironment = 0.15
	weightInterests   = 0.20
)

// confidenceBaseline is a deterministic floor so every career in the small
// catalog keeps a non-zero score. It is a tie-breaker, not a scoring signal;
// the weighted sum is rescaled so confidence stays in [0,1].
const confidenceBaseline = 0.10

// resultSize is the desired number of returned matches, capped by catalog size.
const resultSize = 5

// minIndustries is how many distinct primary industries diversification aims
// to represent before backfilling by score.
const minIndustries = 3

// confidence combines the five alignment dimensions into one [0,1] score.
func confidence(a domain.AlignmentScores) float64 {
	weighted := a.Skills*weightSkills +
		a.Personality*weightPersonality +
		a.Values*weightValues +
		a.Environment*weightEnvironment +
		a.Interests*weightInterests
	return clamp01(confidenceBaseline + (1-confidenceBaseline)*weighted)
}

// rankAndDiversify sorts matches by confidence and picks up to size entries,
// preferring unseen primary industries until minIndustries are represented,
// then backfilling with the remaining highest-scored careers. The top match
// is always kept. No randomness anywhere: equal scores keep catalog order.
func rankAndDiversify(matches []domain.CareerMatch, size int) []domain.CareerMatch {
	if len(matches) == 0 {
		return nil
	}
	sorted := make([]domain.CareerMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	if size > len(sorted) {
		size = len(sorted)
	}

	picked := make([]domain.CareerMatch, 0, size)
	used := make(map[string]bool, size)
	industries := make(map[string]bool)

	picked = append(picked, sorted[0])
	used[sorted[0].Career.ID] = true
	industries[sorted[0].Career.PrimaryIndustry()] = true

	for _, m := range sorted[1:] {
		if len(picked) >= size || len(industries) >= minIndustries {
			break
		}
		industry := m.Career.PrimaryIndustry()
		if industries[industry] {
			continue
		}
		picked = append(picked, m)
		used[m.Career.ID] = true
		industries[industry] = true
	}

	for _, m := range sorted[1:] {
		if len(picked) >= size {
			break
		}
		if used[m.Career.ID] {
			continue
		}
		picked = append(picked, m)
		used[m.Career.ID] = true
	}

	return picked
}
