package translator

import (
	"context"
	"sync"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

var _ cacheStore = &cacheStoreMock{}

type cacheStoreMock struct {
	LoadAllFunc func(ctx context.Context) (map[string]domain.FeedbackEntry, error)
	SaveAllFunc func(ctx context.Context, entries map[string]domain.FeedbackEntry) error

	calls struct {
		LoadAll []struct{}
		SaveAll []struct {
			Entries map[string]domain.FeedbackEntry
		}
	}
	lockLoadAll sync.RWMutex
	lockSaveAll sync.RWMutex
}

func (mock *cacheStoreMock) LoadAll(ctx context.Context) (map[string]domain.FeedbackEntry, error) {
	if mock.LoadAllFunc == nil {
		panic("cacheStoreMock.LoadAllFunc: method is nil but cacheStore.LoadAll was just called")
	}
	mock.lockLoadAll.Lock()
	mock.calls.LoadAll = append(mock.calls.LoadAll, struct{}{})
	mock.lockLoadAll.Unlock()
	return mock.LoadAllFunc(ctx)
}

func (mock *cacheStoreMock) LoadAllCalls() []struct{} {
	mock.lockLoadAll.RLock()
	defer mock.lockLoadAll.RUnlock()
	return mock.calls.LoadAll
}

func (mock *cacheStoreMock) SaveAll(ctx context.Context, entries map[string]domain.FeedbackEntry) error {
	if mock.SaveAllFunc == nil {
		panic("cacheStoreMock.SaveAllFunc: method is nil but cacheStore.SaveAll was just called")
	}
	callInfo := struct {
		Entries map[string]domain.FeedbackEntry
	}{Entries: entries}
	mock.lockSaveAll.Lock()
	mock.calls.SaveAll = append(mock.calls.SaveAll, callInfo)
	mock.lockSaveAll.Unlock()
	return mock.SaveAllFunc(ctx, entries)
}

func (mock *cacheStoreMock) SaveAllCalls() []struct {
	Entries map[string]domain.FeedbackEntry
} {
	mock.lockSaveAll.RLock()
	defer mock.lockSaveAll.RUnlock()
	return mock.calls.SaveAll
}
