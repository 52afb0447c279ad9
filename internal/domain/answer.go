package domain

// Answer is the tagged union of quiz answer shapes: exactly one field is
// populated, and which one must correspond to the question's AnswerType.
// A zero Answer means the question was skipped.
type Answer struct {
	Choice     string         `json:"choice,omitempty"`
	Selections []string       `json:"selections,omitempty"`
	Ratings    map[string]int `json:"ratings,omitempty"`
}

func SingleChoice(option string) Answer {
	return Answer{Choice: option}
}

func MultiSelect(options ...string) Answer {
	return Answer{Selections: options}
}

func Rating(ratings map[string]int) Answer {
	return Answer{Ratings: ratings}
}

// IsEmpty reports whether the answer carries no signal at all.
func (a Answer) IsEmpty() bool {
	return a.Choice == "" && len(a.Selections) == 0 && len(a.Ratings) == 0
}

// MatchesType reports whether the answer's populated shape is consistent with
// the declared answer type. Empty answers are consistent with every type:
// skipping a question is always allowed.
func (a Answer) MatchesType(t AnswerType) bool {
	if a.IsEmpty() {
		return true
	}
	switch t {
	case AnswerSingleChoice:
		return a.Choice != "" && len(a.Selections) == 0 && len(a.Ratings) == 0
	case AnswerMultiSelect:
		return len(a.Selections) > 0 && a.Choice == "" && len(a.Ratings) == 0
	case AnswerRating:
		return len(a.Ratings) > 0 && a.Choice == "" && len(a.Selections) == 0
	}
	return false
}

// Response pairs one answer with its question's scoring context. The answer
// has already been shape-checked: a mismatched or missing answer is carried
// as an empty Answer so scoring degrades instead of failing.
type Response struct {
	QuestionID string
	Category   Category
	Weight     float64
	Answer     Answer
}
