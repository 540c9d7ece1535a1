package translator

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/banglish-backend/internal/config"
	"github.com/heartmarshall/banglish-backend/internal/domain"
	"github.com/heartmarshall/banglish-backend/internal/translator/ruleset"
)

//go:generate moq -out dict_lookup_mock_test.go -pkg translator . dictLookup
//go:generate moq -out cache_store_mock_test.go -pkg translator . cacheStore

// dummyPairs mirrors the seed vocabulary used across the pipeline tests.
var dummyPairs = map[string]string{
	"kemon acho":             "how are you",
	"ami tomake bhalo bashi": "I love you",
	"ki koro":                "what are you doing",
	"dhonnobad":              "thank you",
	"bhalo achi":             "I am fine",
	"tumi":                   "you",
	"ami":                    "I",
	"bari":                   "home",
	"mach":                   "fish",
	"boro":                   "big",
	"choto":                  "small",
}

// newDummyDict builds a dictionary mock over dummyPairs, case-insensitive
// in both directions.
func newDummyDict() *dictLookupMock {
	return &dictLookupMock{
		LookupFunc: func(_ context.Context, text string, direction domain.Direction) (*domain.Entry, error) {
			needle := strings.ToLower(strings.TrimSpace(text))
			switch direction {
			case domain.DirectionForward:
				if english, ok := dummyPairs[needle]; ok {
					return &domain.Entry{Banglish: needle, English: english}, nil
				}
			case domain.DirectionReverse:
				for banglish, english := range dummyPairs {
					if strings.ToLower(english) == needle {
						return &domain.Entry{Banglish: banglish, English: english}, nil
					}
				}
			}
			return nil, domain.ErrNotFound
		},
	}
}

// newMemStore builds a cache store mock over an in-memory map.
func newMemStore(initial map[string]domain.FeedbackEntry) *cacheStoreMock {
	saved := map[string]domain.FeedbackEntry{}
	for k, v := range initial {
		saved[k] = v
	}
	mock := &cacheStoreMock{}
	mock.LoadAllFunc = func(context.Context) (map[string]domain.FeedbackEntry, error) {
		out := map[string]domain.FeedbackEntry{}
		for k, v := range saved {
			out[k] = v
		}
		return out, nil
	}
	mock.SaveAllFunc = func(_ context.Context, entries map[string]domain.FeedbackEntry) error {
		saved = map[string]domain.FeedbackEntry{}
		for k, v := range entries {
			saved[k] = v
		}
		return nil
	}
	return mock
}

// newTestService wires a Service from the given mocks with default rules
// and a discard-style logger.
func newTestService(t *testing.T, dict dictLookup, store cacheStore) *Service {
	t.Helper()

	rules, err := ruleset.Default()
	if err != nil {
		t.Fatalf("ruleset.Default: %v", err)
	}

	svc, err := NewService(context.Background(), slog.Default(), dict, store, rules, config.TranslatorConfig{
		FuzzyThreshold: 0.8,
		FeedbackPath:   "unused",
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}
