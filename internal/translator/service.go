// Package translator implements the multi-strategy resolution pipeline:
// slang and phonetic normalization, exact and phonetic dictionary lookup,
// Levenshtein fuzzy matching, compound splitting, pattern rewriting, and a
// weighted word-by-word fallback, fronted by a persisted adaptive feedback
// cache. Stages run in a fixed priority order; the first hit wins.
//
// Resolve is stateless per request and safe for concurrent use. The only
// shared mutable state is the feedback cache, guarded by one mutex whose
// critical section spans both the in-memory mutation and the store write.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/banglish-backend/internal/config"
	"github.com/heartmarshall/banglish-backend/internal/domain"
	"github.com/heartmarshall/banglish-backend/internal/translator/ruleset"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictLookup interface {
	// Lookup performs a case-insensitive exact match on the side of the
	// dictionary the direction selects. Returns domain.ErrNotFound on miss.
	Lookup(ctx context.Context, text string, direction domain.Direction) (*domain.Entry, error)
}

type cacheStore interface {
	LoadAll(ctx context.Context) (map[string]domain.FeedbackEntry, error)
	SaveAll(ctx context.Context, entries map[string]domain.FeedbackEntry) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the resolution engine. Construct it with NewService; the zero
// value is not usable.
type Service struct {
	log       *slog.Logger
	dict      dictLookup
	store     cacheStore
	rules     *ruleset.Rules
	threshold float64

	// mu guards cache. Mutations hold it across the store write so two
	// concurrent feedback submissions cannot interleave a lost update.
	mu    sync.Mutex
	cache map[string]domain.FeedbackEntry
}

// NewService creates the engine with injected dependencies and loads the
// persisted feedback cache. A cache that fails to load is logged and
// replaced with an empty one; construction does not fail for it.
func NewService(
	ctx context.Context,
	logger *slog.Logger,
	dict dictLookup,
	store cacheStore,
	rules *ruleset.Rules,
	cfg config.TranslatorConfig,
) (*Service, error) {
	if rules == nil {
		return nil, fmt.Errorf("translator: nil ruleset")
	}
	if cfg.FuzzyThreshold <= 0 || cfg.FuzzyThreshold > 1 {
		return nil, fmt.Errorf("translator: fuzzy threshold %v outside (0,1]", cfg.FuzzyThreshold)
	}

	s := &Service{
		log:       logger.With("service", "translator"),
		dict:      dict,
		store:     store,
		rules:     rules,
		threshold: cfg.FuzzyThreshold,
		cache:     map[string]domain.FeedbackEntry{},
	}

	loaded, err := store.LoadAll(ctx)
	if err != nil {
		s.log.Warn("feedback cache load failed, starting empty",
			slog.String("error", err.Error()))
	} else if loaded != nil {
		s.cache = loaded
	}

	s.log.Info("translation engine ready",
		slog.Int("slang_mappings", len(rules.Slang)),
		slog.Int("phonetic_rules", len(rules.Phonetic)),
		slog.Int("compound_rules", len(rules.Compound)),
		slog.Int("pattern_rules", len(rules.Pattern)),
		slog.Int("reference_phrases", len(rules.ReferencePhrases)),
		slog.Int("adaptive_cache_size", len(s.cache)),
	)

	return s, nil
}

// lookupEntry wraps the dictionary collaborator. A miss returns (nil, nil);
// an infrastructure failure returns the error so stages can decide whether
// to degrade (treat as miss) or skip a rule.
func (s *Service) lookupEntry(ctx context.Context, text string, direction domain.Direction) (*domain.Entry, error) {
	entry, err := s.dict.Lookup(ctx, text, direction)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
