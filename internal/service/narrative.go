package service

import (
	"fmt"
	"strings"

	"naijapath/internal/domain"
)

// Thresholds above which a dimension earns a match reason.
const (
	reasonThresholdSkills      = 0.5
	reasonThresholdPersonality = 0.5
	reasonThresholdValues      = 0.45
	reasonThresholdEnvironment = 0.4
	reasonThresholdInterests   = 0.5
)

const (
	maxSkillGaps = 4
	maxNextSteps = 4
)

// NarrativeBuilder turns alignment scores and career data into the
// human-readable parts of a match. Pure functions of their inputs.
type NarrativeBuilder struct{}

// Reasons lists why a career matched. Falls back to one generic reason when
// no dimension clears its threshold.
func (NarrativeBuilder) Reasons(a domain.AlignmentScores, career domain.Career) []string {
	var reasons []string
	if a.Skills > reasonThresholdSkills {
		reasons = append(reasons, "Your natural strengths line up with the skills this role demands.")
	}
	if a.Personality > reasonThresholdPersonality {
		reasons = append(reasons, fmt.Sprintf("Your personality profile fits the typical %s.", career.Title))
	}
	if a.Values > reasonThresholdValues {
		reasons = append(reasons, "This career supports what you said matters most to you.")
	}
	if a.Environment > reasonThresholdEnvironment {
		reasons = append(reasons, "The day-to-day work environment matches where you thrive.")
	}
	if a.Interests > reasonThresholdInterests {
		reasons = append(reasons, "Your interests point strongly toward this field.")
	}
	if career.MarketContext.Demand == domain.DemandHigh {
		reasons = append(reasons, fmt.Sprintf("Demand for %s roles is high across Nigeria right now.", career.Title))
	}
	if career.GrowthOutlook == domain.GrowthExcellent {
		reasons = append(reasons, "The long-term growth outlook for this career is excellent.")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("%s is a balanced match across your answers.", career.Title))
	}
	return reasons
}

// SkillGaps lists required skills with no evidence in the user's skill
// tokens, verbatim from the career profile, capped at maxSkillGaps. Uses the
// same containment rule as the alignment scorers.
func (NarrativeBuilder) SkillGaps(profile domain.UserProfile, career domain.Career) []string {
	tokens := profile.CategoryKeywords(domain.CategorySkills)
	var gaps []string
	for _, skill := range career.RequiredSkills {
		if len(gaps) >= maxSkillGaps {
			break
		}
		matched := false
		for word := range tokenize(skill) {
			for _, token := range tokens {
				if matchesToken(token, word) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			gaps = append(gaps, skill)
		}
	}
	return gaps
}

// NextSteps builds a capped action list: the first education pathway, up to
// two skill gaps, up to two local opportunity venues, and two generic steps.
func (NarrativeBuilder) NextSteps(career domain.Career, gaps []string) []string {
	var steps []string
	if len(career.EducationRequirements) > 0 {
		steps = append(steps, fmt.Sprintf("Explore the typical pathway: %s.", career.EducationRequirements[0]))
	}
	for i, gap := range gaps {
		if i >= 2 {
			break
		}
		steps = append(steps, fmt.Sprintf("Build up your %s skills.", strings.ToLower(gap)))
	}
	for i, venue := range career.MarketContext.LocalOpportunities {
		if i >= 2 {
			break
		}
		steps = append(steps, fmt.Sprintf("Target opportunities in %s.", strings.ToLower(venue)))
	}
	steps = append(steps,
		"Build a portfolio of small real projects.",
		"Network with professionals in the field.",
	)
	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}

// Recommendations produces the top-level guidance shown above the match list.
// Always three items.
func (NarrativeBuilder) Recommendations(matches []domain.CareerMatch) []string {
	if len(matches) == 0 {
		return nil
	}
	top := matches[0]
	recs := []string{
		fmt.Sprintf("%s is your strongest match at %d%% confidence.", top.Career.Title, top.MatchPercent),
	}
	if len(top.SkillGaps) > 0 {
		named := top.SkillGaps
		if len(named) > 2 {
			named = named[:2]
		}
		recs = append(recs, fmt.Sprintf("Closing skill gaps like %s would strengthen your profile.",
			strings.ToLower(strings.Join(named, " and "))))
	} else {
		recs = append(recs, fmt.Sprintf("You already show the core skills this path expects; start applying them in %s.",
			strings.ToLower(top.Career.PrimaryIndustry())))
	}
	if len(matches) > 1 {
		recs = append(recs, fmt.Sprintf("Keep %s in view as a strong alternative path.", matches[1].Career.Title))
	} else {
		recs = append(recs, "Retake the quiz as your interests evolve to see how your matches shift.")
	}
	return recs
}
