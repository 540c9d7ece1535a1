package translator

import (
	"context"
	"sync"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

var _ dictLookup = &dictLookupMock{}

type dictLookupMock struct {
	LookupFunc func(ctx context.Context, text string, direction domain.Direction) (*domain.Entry, error)

	calls struct {
		Lookup []struct {
			Text      string
			Direction domain.Direction
		}
	}
	lockLookup sync.RWMutex
}

func (mock *dictLookupMock) Lookup(ctx context.Context, text string, direction domain.Direction) (*domain.Entry, error) {
	if mock.LookupFunc == nil {
		panic("dictLookupMock.LookupFunc: method is nil but dictLookup.Lookup was just called")
	}
	callInfo := struct {
		Text      string
		Direction domain.Direction
	}{Text: text, Direction: direction}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, text, direction)
}

func (mock *dictLookupMock) LookupCalls() []struct {
	Text      string
	Direction domain.Direction
} {
	mock.lockLookup.RLock()
	defer mock.lockLookup.RUnlock()
	return mock.calls.Lookup
}
