package sessions

import (
	"context"
	"sync"
	"time"

	"voltgate/internal/domain"
)

type memoryStore struct {
	mu   sync.Mutex
	now  func() time.Time
	data map[string]domain.Session
}

// NewMemoryStore is the single-process fallback used when no redis address
// is configured, and the store the HTTP tests run against.
func NewMemoryStore(now func() time.Time) *memoryStore {
	if now == nil {
		now = time.Now
	}
	return &memoryStore{now: now, data: make(map[string]domain.Session)}
}

func memoryKey(scope domain.SessionScope, token string) string {
	return string(scope) + ":" + token
}

func (s *memoryStore) Put(_ context.Context, scope domain.SessionScope, token, subjectID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[memoryKey(scope, token)] = domain.Session{SubjectID: subjectID, ExpiresAt: s.now().Add(ttl)}
	return nil
}

func (s *memoryStore) Get(_ context.Context, scope domain.SessionScope, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memoryKey(scope, token)
	session, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	if s.now().After(session.ExpiresAt) {
		delete(s.data, key)
		return "", domain.ErrNotFound
	}
	return session.SubjectID, nil
}

func (s *memoryStore) Delete(_ context.Context, scope domain.SessionScope, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, memoryKey(scope, token))
	return nil
}
