package service

import (
	"sync"
	"time"
)

// memoEntry represents a cached value with expiration
type memoEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Memo is a TTL cache for values that are expensive to recompute, such as
// directory lookups and admin-ID snapshots. Expired entries simply miss;
// they are overwritten by the next Set rather than swept.
type Memo struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]memoEntry
	nowFunc func() time.Time
}

// NewMemo creates a memo whose entries live for ttl
func NewMemo(ttl time.Duration) *Memo {
	return NewMemoWithClock(ttl, time.Now)
}

// NewMemoWithClock creates a memo with an injectable clock so expiry can be
// driven deterministically in tests
func NewMemoWithClock(ttl time.Duration, nowFunc func() time.Time) *Memo {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &Memo{
		ttl:     ttl,
		entries: make(map[string]memoEntry),
		nowFunc: nowFunc,
	}
}

// Get returns the cached value for key if it has not expired
func (m *Memo) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.entries[key]
	if !exists || !m.nowFunc().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key for the memo's TTL
func (m *Memo) Set(key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoEntry{
		value:     value,
		expiresAt: m.nowFunc().Add(m.ttl),
	}
}

// Invalidate drops the cached value for key
func (m *Memo) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// InvalidateAll drops every cached value
func (m *Memo) InvalidateAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]memoEntry)
}
