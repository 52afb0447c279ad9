package service

import (
	"strings"

	"naijapath/internal/domain"
)

// neutralAlignment is returned for any dimension where the user supplied no
// tokens, so a skipped category does not zero out an otherwise strong match.
const neutralAlignment = 0.3

// skillCategoryBonus is added when the user's skill tokens and a career's
// required skills share a coarse skill family.
const skillCategoryBonus = 0.2

// valuesKeywordBonus is added per matched values signal (impact, pay, growth).
const valuesKeywordBonus = 0.15

// highSalaryFloor marks a career ceiling worth a "financial" values bonus.
// Catalog salaries are annual NGN.
const highSalaryFloor = 10_000_000

// skillFamilies maps coarse skill families to their marker keywords. A side
// belongs to a family when its aggregated text contains any marker.
var skillFamilies = map[string][]string{
	"technical":     {"technical", "programming", "data", "software", "digital", "analytical", "mathematical", "security"},
	"creative":      {"creative", "design", "artistic", "writing", "content", "visual"},
	"communication": {"communication", "interpersonal", "speaking", "teaching", "presentation", "empathy"},
	"leadership":    {"leadership", "management", "leading", "strategic", "entrepreneurial"},
	"business":      {"business", "financial", "sales", "marketing", "economics", "negotiation"},
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// matchesToken is the symmetric containment rule: partial word overlaps count
// in both directions. This fuzziness is a behavioural contract, not a bug;
// downstream score magnitudes assume it.
func matchesToken(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// tokenOverlap is the scoring primitive shared by every dimension: the
// fraction of target words evidenced by at least one user token. Returns a
// value in [0,1]; 0 when either side is empty.
func tokenOverlap(userTokens []string, targetText string) float64 {
	if len(userTokens) == 0 {
		return 0
	}
	words := tokenize(targetText)
	if len(words) == 0 {
		return 0
	}
	matched := 0
	for word := range words {
		for _, token := range userTokens {
			if matchesToken(token, word) {
				matched++
				break
			}
		}
	}
	return clamp01(float64(matched) / float64(len(words)))
}

// AlignmentScorer computes the five per-dimension alignment scores between a
// user profile and one career. Stateless and deterministic.
type AlignmentScorer struct{}

func (s AlignmentScorer) Score(profile domain.UserProfile, career domain.Career) domain.AlignmentScores {
	return domain.AlignmentScores{
		Skills:      s.skillsAlignment(profile, career),
		Personality: s.personalityAlignment(profile, career),
		Values:      s.valuesAlignment(profile, career),
		Environment: s.environmentAlignment(profile, career),
		Interests:   s.interestsAlignment(profile, career),
	}
}

func (s AlignmentScorer) skillsAlignment(profile domain.UserProfile, career domain.Career) float64 {
	tokens := profile.CategoryKeywords(domain.CategorySkills)
	if len(tokens) == 0 {
		return neutralAlignment
	}
	score := tokenOverlap(tokens, strings.Join(career.RequiredSkills, " "))
	if sharesSkillFamily(tokens, career.RequiredSkills) {
		score += skillCategoryBonus
	}
	return clamp01(score)
}

func (s AlignmentScorer) personalityAlignment(profile domain.UserProfile, career domain.Career) float64 {
	tokens := profile.CategoryKeywords(domain.CategoryPersonality)
	if len(tokens) == 0 {
		return neutralAlignment
	}
	return tokenOverlap(tokens, strings.Join(career.PersonalityFit, " "))
}

func (s AlignmentScorer) valuesAlignment(profile domain.UserProfile, career domain.Career) float64 {
	tokens := profile.CategoryKeywords(domain.CategoryValues)
	if len(tokens) == 0 {
		return neutralAlignment
	}
	target := career.Description + " " + strings.Join(career.IndustryTags, " ")
	score := tokenOverlap(tokens, target)

	if hasAnyToken(tokens, "impact") && strings.Contains(strings.ToLower(career.Description), "impact") {
		score += valuesKeywordBonus
	}
	if hasAnyToken(tokens, "financial", "salary", "wealth") && career.SalaryRange.Max >= highSalaryFloor {
		score += valuesKeywordBonus
	}
	if hasAnyToken(tokens, "growth", "learning") && career.GrowthOutlook == domain.GrowthExcellent {
		score += valuesKeywordBonus
	}
	return clamp01(score)
}

func (s AlignmentScorer) environmentAlignment(profile domain.UserProfile, career domain.Career) float64 {
	tokens := profile.CategoryKeywords(domain.CategoryWorkEnvironment)
	if len(tokens) == 0 {
		return neutralAlignment
	}
	return tokenOverlap(tokens, strings.Join(career.WorkEnvironment, " "))
}

func (s AlignmentScorer) interestsAlignment(profile domain.UserProfile, career domain.Career) float64 {
	tokens := profile.CategoryKeywords(domain.CategoryInterests)
	if len(tokens) == 0 {
		return neutralAlignment
	}
	target := career.Description + " " +
		strings.Join(career.IndustryTags, " ") + " " +
		strings.Join(career.RequiredSkills, " ")
	return tokenOverlap(tokens, target)
}

// hasAnyToken reports whether any user token matches one of the markers under
// the symmetric containment rule.
func hasAnyToken(tokens []string, markers ...string) bool {
	for _, token := range tokens {
		for _, marker := range markers {
			if matchesToken(token, marker) {
				return true
			}
		}
	}
	return false
}

// sharesSkillFamily reports whether both the user's skill tokens and the
// career's required skills fall into at least one common coarse family.
func sharesSkillFamily(userTokens []string, requiredSkills []string) bool {
	careerText := strings.ToLower(strings.Join(requiredSkills, " "))
	for _, markers := range skillFamilies {
		userHit := false
		for _, marker := range markers {
			if hasAnyToken(userTokens, marker) {
				userHit = true
				break
			}
		}
		if !userHit {
			continue
		}
		for _, marker := range markers {
			if strings.Contains(careerText, marker) {
				return true
			}
		}
	}
	return false
}
