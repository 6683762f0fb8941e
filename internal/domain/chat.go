package domain

// PlaceholderConfidence is reported with every chat answer. It is not computed
// from the model output.
const PlaceholderConfidence = 0.85

// ChatResult is the answer to a question about a set of notes.
type ChatResult struct {
	Answer     string
	Confidence float64
	// Sources are leading sentence fragments of the notes, not a relevance ranking.
	Sources []string
}
