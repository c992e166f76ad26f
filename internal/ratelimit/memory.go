package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter is the in-process strategy: a map from key to a counter with
// a rolling 24h window starting at the key's first submission. It is not
// shared across instances and resets on restart, so it only suits
// single-process deployments. Entries for past windows are reused in place;
// the map itself is never pruned.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*memoryEntry
}

func NewMemory(limit int) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  24 * time.Hour,
		entries: make(map[string]*memoryEntry),
	}
}

func (m *MemoryLimiter) Allow(ctx context.Context, key string) (Result, error) {
	return m.allow(key, time.Now()), nil
}

func (m *MemoryLimiter) allow(key string, now time.Time) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || now.Sub(e.windowStart) >= m.window {
		e = &memoryEntry{windowStart: now}
		m.entries[key] = e
	}

	e.count++

	remaining := m.limit - e.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   e.count <= m.limit,
		Count:     e.count,
		Limit:     m.limit,
		Remaining: remaining,
		ResetAt:   e.windowStart.Add(m.window),
	}
}

func (m *MemoryLimiter) Limit() int {
	return m.limit
}
