package translator

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

// fuzzyConfidenceFactor discounts the similarity score: even a very close
// fuzzy match is less certain than an exact one.
const fuzzyConfidenceFactor = 0.9

// fuzzyMatch finds the reference phrase closest to the query by Levenshtein
// similarity. A candidate counts only if it clears the threshold AND
// resolves in the dictionary. Best similarity wins; ties go to the phrase
// listed earlier. Forward direction only.
func (s *Service) fuzzyMatch(ctx context.Context, query string) *domain.TranslationResult {
	lowered := strings.ToLower(query)
	queryLen := utf8.RuneCountInString(lowered)

	var (
		bestPhrase      string
		bestTranslation string
		bestSimilarity  float64
		found           bool
	)

	for _, phrase := range s.rules.ReferencePhrases {
		distance := levenshtein.ComputeDistance(lowered, strings.ToLower(phrase))
		maxLen := max(queryLen, utf8.RuneCountInString(phrase))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity < s.threshold {
			continue
		}

		entry, err := s.lookupEntry(ctx, phrase, domain.DirectionForward)
		if err != nil {
			s.log.Warn("fuzzy candidate lookup failed",
				slog.String("phrase", phrase),
				slog.String("error", err.Error()))
			continue
		}
		if entry == nil {
			continue
		}

		// Strict > keeps the earliest phrase on similarity ties.
		if !found || similarity > bestSimilarity {
			found = true
			bestPhrase = phrase
			bestTranslation = entry.TranslationFor(domain.DirectionForward)
			bestSimilarity = similarity
		}
	}

	if !found {
		return nil
	}

	return &domain.TranslationResult{
		Translation:   bestTranslation,
		Confidence:    bestSimilarity * fuzzyConfidenceFactor,
		Method:        domain.MethodFuzzy,
		MatchedPhrase: bestPhrase,
		Similarity:    bestSimilarity,
	}
}
