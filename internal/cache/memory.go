package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	val     []byte
	expires time.Time // zero never expires
}

// Memory is an in-process Cache. Expired entries are dropped on Get and by a
// sweep that Set runs at most once per TTL, so memory stays bounded by what
// was written within roughly two TTLs.
type Memory struct {
	mu        sync.Mutex
	ttl       time.Duration
	items     map[string]entry
	now       func() time.Time
	lastSweep time.Time
}

// NewMemory returns a cache whose entries live for ttl; 0 keeps them forever.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, items: make(map[string]entry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[key]
	if !ok {
		return nil, ErrMiss
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.items, key)
		return nil, ErrMiss
	}
	return append([]byte(nil), e.val...), nil
}

func (m *Memory) Set(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	e := entry{val: append([]byte(nil), val...)}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
		if now.Sub(m.lastSweep) >= m.ttl {
			m.sweep(now)
		}
	}
	m.items[key] = e
	return nil
}

func (m *Memory) sweep(now time.Time) {
	for k, e := range m.items {
		if !e.expires.IsZero() && !now.Before(e.expires) {
			delete(m.items, k)
		}
	}
	m.lastSweep = now
}

// Len counts stored entries, including expired ones not yet dropped.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
