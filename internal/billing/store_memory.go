package billing

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]Subscription
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Subscription)}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}
	s.mu.RLock()
	sub, ok := s.data[userID]
	s.mu.RUnlock()
	if ok {
		return sub, nil
	}
	return Subscription{UserID: userID, Tier: TierFree}, nil
}

func (s *memoryStore) Set(ctx context.Context, sub Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.data[sub.UserID] = sub
	s.mu.Unlock()
	return nil
}
