package translator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/domain"
	"github.com/heartmarshall/banglish-backend/internal/translator/ruleset"
)

// patternMatch tries each pattern rule against the whole query in
// declaration order. On match, the base phrase is resolved via the
// dictionary, falling back to the word-by-word translation text (only the
// text — the fallback's confidence is not reused), and combined with the
// rule's affixes. A rule whose base lookup hits an infrastructure error is
// skipped. Forward direction only.
func (s *Service) patternMatch(ctx context.Context, query string) *domain.TranslationResult {
	for _, rule := range s.rules.Pattern {
		m := rule.Regexp.FindStringSubmatch(query)
		if m == nil {
			continue
		}

		base := m[rule.BaseIndex]

		baseTranslation := base
		entry, err := s.lookupEntry(ctx, base, domain.DirectionForward)
		if err != nil {
			s.log.Warn("pattern base lookup failed, skipping rule",
				slog.String("rule", rule.Name),
				slog.String("error", err.Error()))
			continue
		}
		if entry != nil {
			baseTranslation = entry.TranslationFor(domain.DirectionForward)
		} else {
			baseTranslation = s.wordByWordText(ctx, base)
		}

		return &domain.TranslationResult{
			Translation: renderPattern(rule, baseTranslation),
			Confidence:  rule.Confidence,
			Method:      domain.MethodPattern,
			Pattern:     rule.Name,
		}
	}

	return nil
}

// renderPattern combines the translated base phrase with the rule's affixes
// according to the rule kind. An empty base collapses to the affix alone.
func renderPattern(rule ruleset.PatternRule, base string) string {
	base = strings.TrimSpace(base)

	switch rule.Kind {
	case ruleset.KindPrefix:
		if base == "" {
			return rule.Prefix
		}
		return rule.Prefix + " " + base
	case ruleset.KindSuffix:
		if base == "" {
			return rule.Suffix
		}
		return base + " " + rule.Suffix
	case ruleset.KindWrap:
		if base == "" {
			return rule.Prefix + rule.Suffix
		}
		return rule.Prefix + " " + base + rule.Suffix
	}

	return base
}
