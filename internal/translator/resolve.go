package translator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

const (
	exactConfidence    = 1.0
	phoneticConfidence = 0.95
)

// Resolve runs the pipeline for one query. Stages are tried in fixed
// priority order and the first hit is returned:
//
//  1. adaptive feedback cache (raw query, both directions)
//  2. exact lookup on the slang-normalized query (both directions)
//  3. phonetic lookup, only when the phonetic form differs (both directions)
//  4. fuzzy match            (forward only)
//  5. compound split         (forward only)
//  6. pattern rewrite        (forward only)
//  7. word-by-word fallback  (forward only)
//
// The reverse direction stops after stage 3; so does an unknown direction.
// A miss is (nil, nil). The only error is domain.ErrEmptyQuery for an
// empty or whitespace-only query; no internal failure ever escapes.
func (s *Service) Resolve(ctx context.Context, query string, direction domain.Direction) (*domain.TranslationResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	if result := s.cacheLookup(query, direction); result != nil {
		s.logHit(query, result)
		return result, nil
	}

	normalized := s.normalizeSlang(query)

	if entry := s.stageLookup(ctx, normalized, direction, "exact"); entry != nil {
		result := &domain.TranslationResult{
			Translation: entry.TranslationFor(direction),
			Confidence:  exactConfidence,
			Method:      domain.MethodExact,
		}
		s.logHit(query, result)
		return result, nil
	}

	phonetic := s.normalizePhonetic(normalized)
	if phonetic != normalized {
		if entry := s.stageLookup(ctx, phonetic, direction, "phonetic"); entry != nil {
			result := &domain.TranslationResult{
				Translation:  entry.TranslationFor(direction),
				Confidence:   phoneticConfidence,
				Method:       domain.MethodPhonetic,
				PhoneticForm: phonetic,
			}
			s.logHit(query, result)
			return result, nil
		}
	}

	// Stages 4-7 apply to the forward direction exclusively. The reverse
	// direction (and any unrecognized direction value) misses here.
	if direction != domain.DirectionForward {
		s.logMiss(query, direction)
		return nil, nil
	}

	if result := s.fuzzyMatch(ctx, normalized); result != nil {
		s.logHit(query, result)
		return result, nil
	}

	if result := s.compoundSplit(ctx, normalized); result != nil {
		s.logHit(query, result)
		return result, nil
	}

	if result := s.patternMatch(ctx, normalized); result != nil {
		s.logHit(query, result)
		return result, nil
	}

	if result := s.wordByWord(ctx, normalized); result != nil {
		s.logHit(query, result)
		return result, nil
	}

	s.logMiss(query, direction)
	return nil, nil
}

// stageLookup performs a dictionary lookup for the exact/phonetic stages,
// degrading any infrastructure failure to a stage miss.
func (s *Service) stageLookup(ctx context.Context, text string, direction domain.Direction, stage string) *domain.Entry {
	entry, err := s.lookupEntry(ctx, text, direction)
	if err != nil {
		s.log.Warn("dictionary lookup failed, treating as miss",
			slog.String("stage", stage),
			slog.String("error", err.Error()))
		return nil
	}
	return entry
}

func (s *Service) logHit(query string, result *domain.TranslationResult) {
	s.log.Debug("translation resolved",
		slog.Int("query_length", len(query)),
		slog.String("method", result.Method.String()),
		slog.Float64("confidence", result.Confidence),
	)
}

// logMiss surfaces unresolved queries for dataset-expansion triage. Only
// the length is logged, not the raw text.
func (s *Service) logMiss(query string, direction domain.Direction) {
	s.log.Info("translation miss",
		slog.Int("query_length", len(query)),
		slog.String("direction", direction.String()),
	)
}
