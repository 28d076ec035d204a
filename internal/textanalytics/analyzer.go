// Package textanalytics defines the text-intelligence collaborator used
// by the journal pipeline. The real service lives elsewhere; this core
// only consumes scores and key phrases.
package textanalytics

import "context"

// Analyzer scores sentiment and extracts key phrases from entry content.
type Analyzer interface {
	// ScoreSentiment returns a score in [0, 1], 1 being most positive.
	ScoreSentiment(ctx context.Context, text string) (float64, error)
	// ExtractKeyPhrases returns notable phrases found in the text.
	ExtractKeyPhrases(ctx context.Context, text string) ([]string, error)
}
