package domain

// Category buckets quiz questions and the user-profile tokens derived from
// their answers.
type Category string

const (
	CategoryInterests       Category = "interests"
	CategoryValues          Category = "values"
	CategoryWorkEnvironment Category = "work-environment"
	CategorySkills          Category = "skills"
	CategoryPersonality     Category = "personality"
)

// Categories lists every valid category in a stable order.
var Categories = []Category{
	CategoryInterests,
	CategoryValues,
	CategoryWorkEnvironment,
	CategorySkills,
	CategoryPersonality,
}

type AnswerType string

const (
	AnswerSingleChoice AnswerType = "single-choice"
	AnswerMultiSelect  AnswerType = "multi-select"
	AnswerRating       AnswerType = "rating"
)

// Question is one entry of the static quiz. Options holds choice labels for
// single-choice and multi-select questions, and factor labels (each rated
// 1-5) for rating questions. MaxSelections only applies to multi-select.
type Question struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Description   string     `json:"description,omitempty"`
	Category      Category   `json:"category"`
	Weight        float64    `json:"weight"`
	AnswerType    AnswerType `json:"answer_type"`
	Options       []string   `json:"options"`
	MaxSelections int        `json:"max_selections,omitempty"`
}
