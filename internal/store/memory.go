package store

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	rec       *Record
	expiresAt time.Time
}

// Memory is an in-process TTL store. Expired entries are invisible to Get and are swept by a
// background janitor until Close is called.
type Memory struct {
	mu   sync.RWMutex
	data map[string]*entry
	ttl  time.Duration
	now  func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemory starts a Memory store whose janitor runs every sweep. A sweep <= 0 disables it.
func NewMemory(ttl, sweep time.Duration) *Memory {
	m := &Memory{
		data: make(map[string]*entry),
		ttl:  ttl,
		now:  time.Now,
		stop: make(chan struct{}),
	}
	if sweep > 0 {
		go m.janitor(sweep)
	}
	return m
}

func (m *Memory) Put(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[rec.ID] = &entry{rec: rec, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[id]
	if !ok || m.now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	return e.rec, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.data, id)
	if m.now().After(e.expiresAt) {
		return ErrNotFound
	}
	return nil
}

// Len returns the number of entries held, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *Memory) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })
	return nil
}

func (m *Memory) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stop:
			return
		}
	}
}

// sweep removes expired entries.
func (m *Memory) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, e := range m.data {
		if now.After(e.expiresAt) {
			delete(m.data, id)
		}
	}
}
