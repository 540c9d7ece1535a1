package translator

import (
	"context"
	"log/slog"
	"maps"
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

// feedbackConfidence is the confidence assigned to entries created by
// positive user feedback.
const feedbackConfidence = 0.9

// cacheLookup checks the adaptive feedback cache for the raw (trimmed,
// unnormalized) query. A hit short-circuits the whole pipeline.
func (s *Service) cacheLookup(rawQuery string, direction domain.Direction) *domain.TranslationResult {
	key := domain.FeedbackKey(rawQuery, direction)

	s.mu.Lock()
	entry, ok := s.cache[key]
	s.mu.Unlock()

	if !ok {
		return nil
	}

	return &domain.TranslationResult{
		Translation: entry.Translation,
		Confidence:  entry.Confidence,
		Method:      domain.MethodAdaptiveCache,
	}
}

// RecordFeedback upserts (isCorrect) or deletes (!isCorrect) the cache
// entry for the query+direction key and synchronously persists the whole
// cache. The mutex is held across mutation and persistence so concurrent
// submissions cannot interleave a lost write. A persistence failure is
// logged; the in-memory mutation stands. Never returns an error.
func (s *Service) RecordFeedback(ctx context.Context, query string, direction domain.Direction, suggestedTranslation string, isCorrect bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.log.Warn("feedback ignored for empty query")
		return
	}

	key := domain.FeedbackKey(query, direction)

	s.mu.Lock()
	defer s.mu.Unlock()

	if isCorrect {
		prev := s.cache[key]
		s.cache[key] = domain.FeedbackEntry{
			Translation:   suggestedTranslation,
			Confidence:    feedbackConfidence,
			Method:        domain.FeedbackMethod,
			FeedbackCount: prev.FeedbackCount + 1,
		}
	} else {
		delete(s.cache, key)
	}

	// Hand the store a snapshot so it never observes later mutations.
	if err := s.store.SaveAll(ctx, maps.Clone(s.cache)); err != nil {
		s.log.Error("feedback cache persist failed",
			slog.Int("query_length", len(query)),
			slog.String("direction", direction.String()),
			slog.String("error", err.Error()))
	}

	s.log.Info("user feedback recorded",
		slog.Bool("positive", isCorrect),
		slog.Int("query_length", len(query)),
		slog.String("direction", direction.String()),
		slog.Int("cache_size", len(s.cache)),
	)
}
