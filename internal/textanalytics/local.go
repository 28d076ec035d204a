package textanalytics

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// localAnalyzer is the development stand-in for the hosted text
// analytics service: a small lexicon for sentiment and stopword-filtered
// word frequency for key phrases.
type localAnalyzer struct{}

// NewLocalAnalyzer constructs the in-process analyzer.
func NewLocalAnalyzer() Analyzer {
	return &localAnalyzer{}
}

var positiveWords = map[string]struct{}{
	"happy": {}, "great": {}, "good": {}, "love": {}, "excited": {},
	"proud": {}, "amazing": {}, "calm": {}, "grateful": {}, "energized": {},
	"strong": {}, "accomplished": {}, "wonderful": {}, "fun": {}, "progress": {},
}

var negativeWords = map[string]struct{}{
	"sad": {}, "tired": {}, "bad": {}, "angry": {}, "stressed": {},
	"anxious": {}, "frustrated": {}, "sick": {}, "pain": {}, "exhausted": {},
	"worried": {}, "awful": {}, "terrible": {}, "failed": {}, "lonely": {},
}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "to": {}, "of": {}, "in": {},
	"i": {}, "it": {}, "is": {}, "was": {}, "my": {}, "for": {}, "on": {},
	"with": {}, "that": {}, "this": {}, "at": {}, "but": {}, "so": {},
	"me": {}, "we": {}, "be": {}, "had": {}, "have": {}, "today": {},
}

func (a *localAnalyzer) ScoreSentiment(ctx context.Context, text string) (float64, error) {
	words := tokenize(text)
	if len(words) == 0 {
		return 0.5, nil
	}

	var positive, negative float64
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			positive++
		}
		if _, ok := negativeWords[w]; ok {
			negative++
		}
	}
	if positive+negative == 0 {
		return 0.5, nil
	}

	score := positive / (positive + negative)
	return Clamp(score), nil
}

func (a *localAnalyzer) ExtractKeyPhrases(ctx context.Context, text string) ([]string, error) {
	counts := make(map[string]int)
	for _, w := range tokenize(text) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		if len(w) < 3 {
			continue
		}
		counts[w]++
	}

	phrases := make([]string, 0, len(counts))
	for w := range counts {
		phrases = append(phrases, w)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if counts[phrases[i]] != counts[phrases[j]] {
			return counts[phrases[i]] > counts[phrases[j]]
		}
		return phrases[i] < phrases[j]
	})

	if len(phrases) > 10 {
		phrases = phrases[:10]
	}
	return phrases, nil
}

// Clamp bounds a sentiment score to the documented [0, 1] range.
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
