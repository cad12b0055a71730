package question

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// memoryStore keeps pools in a map. Used by tests and by handler fakes; the
// server runs on SQLStore.
type memoryStore struct {
	mu     sync.RWMutex
	pools  map[Category][]Question
	nextID int64
	rng    *rand.Rand
}

func NewInMemoryStore() Store {
	return &memoryStore{
		pools: map[Category][]Question{},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *memoryStore) Sample(_ context.Context, cat Category, count int) ([]Question, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return nil, err
	}
	m.mu.RLock()
	pool := m.pools[cat]
	m.mu.RUnlock()
	if count <= 0 || len(pool) == 0 {
		return nil, nil
	}
	if count > len(pool) {
		count = len(pool)
	}

	m.mu.Lock()
	perm := m.rng.Perm(len(pool))
	m.mu.Unlock()

	out := make([]Question, 0, count)
	for _, i := range perm[:count] {
		out = append(out, pool[i])
	}
	return out, nil
}

func (m *memoryStore) Count(_ context.Context, cat Category) (int, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pools[cat]), nil
}

func (m *memoryStore) Insert(_ context.Context, qs []Question) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inserted := 0
	for _, q := range qs {
		if _, err := ParseCategory(string(q.Category)); err != nil {
			return inserted, err
		}
		if err := q.Validate(); err != nil {
			return inserted, err
		}
		m.nextID++
		q.ID = m.nextID
		m.pools[q.Category] = append(m.pools[q.Category], q)
		inserted++
	}
	return inserted, nil
}
