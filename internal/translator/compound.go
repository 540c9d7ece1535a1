package translator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

const (
	// compoundFoundWeight / compoundMissWeight score each split part:
	// a part the dictionary knows counts fully, one passed through as-is
	// still contributes a little.
	compoundFoundWeight = 1.0
	compoundMissWeight  = 0.3

	compoundConfidenceFactor = 0.85
	compoundConfidenceCap    = 0.9
)

// compoundSplit tries each compound rule against the whole query in
// declaration order and translates the two captured parts independently.
// A rule whose part lookups hit an infrastructure error is skipped; the
// remaining rules are still tried. Forward direction only.
func (s *Service) compoundSplit(ctx context.Context, query string) *domain.TranslationResult {
	for _, rule := range s.rules.Compound {
		m := rule.Regexp.FindStringSubmatch(query)
		if m == nil {
			continue
		}

		parts := []string{m[1], m[2]}
		translated := make([]string, 0, len(parts))
		var weightSum float64
		ruleFailed := false

		for _, part := range parts {
			entry, err := s.lookupEntry(ctx, part, domain.DirectionForward)
			if err != nil {
				s.log.Warn("compound part lookup failed, skipping rule",
					slog.String("rule", rule.Description),
					slog.String("error", err.Error()))
				ruleFailed = true
				break
			}
			if entry != nil {
				translated = append(translated, entry.TranslationFor(domain.DirectionForward))
				weightSum += compoundFoundWeight
			} else {
				translated = append(translated, part)
				weightSum += compoundMissWeight
			}
		}
		if ruleFailed {
			continue
		}

		confidence := min(compoundConfidenceCap,
			weightSum/float64(len(parts))*compoundConfidenceFactor)

		return &domain.TranslationResult{
			Translation: strings.Join(translated, " "),
			Confidence:  confidence,
			Method:      domain.MethodCompound,
			SplitParts:  parts,
		}
	}

	return nil
}
