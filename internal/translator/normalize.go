package translator

import (
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

// normalizeSlang canonicalizes chat shorthand token by token. Each token is
// stripped of punctuation and lowercased for the map lookup only; tokens
// without a mapping keep their original form, punctuation and case intact.
// Pure function, no failure modes.
func (s *Service) normalizeSlang(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if canonical, ok := s.rules.Slang[domain.StripToken(word)]; ok {
			words[i] = canonical
		}
	}
	return strings.Join(words, " ")
}

// normalizePhonetic lowercases the whole string and applies each phonetic
// rule in table order, each replacing every occurrence present at that
// point. The substitution is sequential, not simultaneous: output of an
// earlier rule can be consumed by a later one. Callers skip the phonetic
// lookup when the result equals the input.
func (s *Service) normalizePhonetic(text string) string {
	out := strings.ToLower(text)
	for _, rule := range s.rules.Phonetic {
		out = strings.ReplaceAll(out, rule.From, rule.To)
	}
	return out
}
