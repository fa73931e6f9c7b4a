package quiz

import (
	"context"
	"sort"
	"sync"

	"github.com/quizhive/quizhive/internal/apperr"
)

// Store is the quiz catalog. Quizzes are created once and read many times;
// there is no update or delete.
type Store interface {
	Put(ctx context.Context, q Quiz) error
	Get(ctx context.Context, id string) (Quiz, error)
	List(ctx context.Context) ([]Quiz, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
}

// NewInMemoryStore is used by tests and throwaway deployments.
func NewInMemoryStore() Store {
	return &memoryStore{quizzes: map[string]Quiz{}}
}

func (m *memoryStore) Put(_ context.Context, q Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, apperr.NotFound("Quiz not found")
	}
	return q, nil
}

func (m *memoryStore) List(_ context.Context) ([]Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Quiz, 0, len(m.quizzes))
	for _, q := range m.quizzes {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}
