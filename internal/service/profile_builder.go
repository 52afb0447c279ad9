package service

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"naijapath/internal/domain"
)

// minTokenLen drops tokens too short to carry signal.
const minTokenLen = 3

// tokenStopWords filters common English words that add noise to keyword
// matching. Deliberately small: scoring-relevant words like "high" or
// "growth" must pass through.
var tokenStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "such": true,
}

// tokenize lowercases text and splits it on anything that is not a letter or
// digit, dropping short tokens and stop words. Returns a set.
func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) >= minTokenLen && !tokenStopWords[w] {
			tokens[w] = struct{}{}
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// ProfileBuilder reduces a response list into the per-category user profile
// the alignment scorers consume. Pure and deterministic.
type ProfileBuilder struct{}

// Build accumulates keyword tokens and question weights per category.
// Weights count every answered-or-not question of a category; tokens only
// come from answers that carried content.
func (ProfileBuilder) Build(responses []domain.Response) domain.UserProfile {
	pools := make(map[domain.Category]map[string]struct{})
	weights := make(map[domain.Category]float64)

	for _, r := range responses {
		weights[r.Category] += r.Weight
		for _, text := range answerTexts(r.Answer) {
			pool := pools[r.Category]
			if pool == nil {
				pool = make(map[string]struct{})
				pools[r.Category] = pool
			}
			for token := range tokenize(text) {
				pool[token] = struct{}{}
			}
		}
	}

	keywords := make(map[domain.Category][]string, len(pools))
	for cat, pool := range pools {
		tokens := make([]string, 0, len(pool))
		for token := range pool {
			tokens = append(tokens, token)
		}
		// Pools are sets; sort so downstream iteration is reproducible.
		sort.Strings(tokens)
		keywords[cat] = tokens
	}

	return domain.UserProfile{Keywords: keywords, Weights: weights}
}

// answerTexts flattens an answer into the raw strings to tokenize. Ratings
// become synthetic "{factor}-{level}-priority" phrases so the keyword
// matchers can treat a 1-5 score as a qualitative signal.
func answerTexts(a domain.Answer) []string {
	switch {
	case a.Choice != "":
		return []string{a.Choice}
	case len(a.Selections) > 0:
		return a.Selections
	case len(a.Ratings) > 0:
		texts := make([]string, 0, len(a.Ratings))
		for factor, rating := range a.Ratings {
			texts = append(texts, fmt.Sprintf("%s-%s-priority", factor, priorityLevel(rating)))
		}
		return texts
	}
	return nil
}

func priorityLevel(rating int) string {
	switch {
	case rating >= 4:
		return "high"
	case rating == 3:
		return "medium"
	default:
		return "low"
	}
}
