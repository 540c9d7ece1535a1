package translator

import (
	"context"
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

const (
	wordByWordConfidenceFactor = 0.7
	wordByWordConfidenceCap    = 0.85
)

// wordByWord resolves each token independently, passing unresolved tokens
// through unchanged. The confidence is weighted by coverage. Returns nil if
// the query has no tokens or no token resolves. Forward direction only.
func (s *Service) wordByWord(ctx context.Context, query string) *domain.TranslationResult {
	words := strings.Fields(query)
	if len(words) == 0 {
		return nil
	}

	translated := make([]string, 0, len(words))
	resolved := 0

	for _, word := range words {
		entry, err := s.lookupEntry(ctx, word, domain.DirectionForward)
		if err == nil && entry != nil {
			translated = append(translated, entry.TranslationFor(domain.DirectionForward))
			resolved++
		} else {
			translated = append(translated, word)
		}
	}

	if resolved == 0 {
		return nil
	}

	confidence := min(wordByWordConfidenceCap,
		float64(resolved)/float64(len(words))*wordByWordConfidenceFactor)

	return &domain.TranslationResult{
		Translation:   strings.Join(translated, " "),
		Confidence:    confidence,
		Method:        domain.MethodWordByWord,
		WordsResolved: resolved,
		WordsTotal:    len(words),
	}
}

// wordByWordText is the text-only variant used to resolve a pattern rule's
// base phrase. Lookup failures leave the token unchanged.
func (s *Service) wordByWordText(ctx context.Context, text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if entry, err := s.lookupEntry(ctx, word, domain.DirectionForward); err == nil && entry != nil {
			words[i] = entry.TranslationFor(domain.DirectionForward)
		}
	}
	return strings.Join(words, " ")
}
