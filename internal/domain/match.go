package domain

import "time"

// UserProfile is the ephemeral reduction of one quiz submission: per-category
// keyword tokens plus the accumulated question weight per category. It is
// built once per analysis and never mutated afterward.
type UserProfile struct {
	Keywords map[Category][]string `json:"keywords"`
	Weights  map[Category]float64  `json:"weights"`
}

// CategoryKeywords returns the token pool for a category, nil when the
// category produced no tokens.
func (p UserProfile) CategoryKeywords(c Category) []string {
	return p.Keywords[c]
}

// AlignmentScores holds the five per-dimension alignment values, each in [0,1].
type AlignmentScores struct {
	Skills      float64 `json:"skills"`
	Personality float64 `json:"personality"`
	Values      float64 `json:"values"`
	Environment float64 `json:"environment"`
	Interests   float64 `json:"interests"`
}

// CareerMatch is one scored career with its narrative fields.
type CareerMatch struct {
	Career       Career          `json:"career"`
	Confidence   float64         `json:"confidence"`
	MatchPercent int             `json:"match_percent"`
	Alignment    AlignmentScores `json:"alignment"`
	Reasons      []string        `json:"reasons"`
	SkillGaps    []string        `json:"skill_gaps"`
	NextSteps    []string        `json:"next_steps"`
}

// AnalysisResult is the full output of one quiz submission: ranked matches,
// the derived profile, and top-level recommendations. Never persisted.
type AnalysisResult struct {
	ID              string        `json:"id"`
	Matches         []CareerMatch `json:"matches"`
	Profile         UserProfile   `json:"profile"`
	Recommendations []string      `json:"recommendations"`
	CreatedAt       time.Time     `json:"created_at"`
}
