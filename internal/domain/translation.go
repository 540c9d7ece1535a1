package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationResult is the single outcome of a resolution attempt.
// Confidence is an ordinal ranking signal in [0,1], not a probability.
type TranslationResult struct {
	Translation string  `json:"translation"`
	Confidence  float64 `json:"confidence"`
	Method      Method  `json:"method"`

	// Optional per-method metadata.

	// MatchedPhrase is the reference phrase a fuzzy match landed on.
	MatchedPhrase string `json:"matched_phrase,omitempty"`
	// Similarity is the fuzzy similarity score before the confidence discount.
	Similarity float64 `json:"similarity,omitempty"`
	// PhoneticForm is the normalized form that produced a phonetic hit.
	PhoneticForm string `json:"phonetic_form,omitempty"`
	// SplitParts holds the two parts a compound rule extracted.
	SplitParts []string `json:"split_parts,omitempty"`
	// Pattern is the name of the pattern rule that matched.
	Pattern string `json:"pattern,omitempty"`
	// WordsResolved / WordsTotal describe word-by-word coverage.
	WordsResolved int `json:"words_resolved,omitempty"`
	WordsTotal    int `json:"words_total,omitempty"`
}

// Entry is a single dictionary pair. The normalized columns back
// case-insensitive lookup in both directions.
type Entry struct {
	ID                 uuid.UUID `json:"id"`
	Banglish           string    `json:"banglish"`
	English            string    `json:"english"`
	BanglishNormalized string    `json:"banglish_normalized"`
	EnglishNormalized  string    `json:"english_normalized"`
	SourceSlug         string    `json:"source_slug"`
	CreatedAt          time.Time `json:"created_at"`
}

// TranslationFor returns the entry side the given direction asks for.
// An invalid direction yields an empty string; callers treat that as a miss.
func (e Entry) TranslationFor(direction Direction) string {
	switch direction {
	case DirectionForward:
		return e.English
	case DirectionReverse:
		return e.Banglish
	}
	return ""
}
