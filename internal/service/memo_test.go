package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo_SetAndGet(t *testing.T) {
	memo := NewMemo(5 * time.Minute)

	_, ok := memo.Get("missing")
	assert.False(t, ok)

	memo.Set("admins", []string{"100001", "100002"})
	value, ok := memo.Get("admins")
	require.True(t, ok)
	assert.Equal(t, []string{"100001", "100002"}, value)
}

func TestMemo_EntriesExpire(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	memo := NewMemoWithClock(5*time.Minute, func() time.Time { return now })

	memo.Set("admins", "cached")

	now = now.Add(5*time.Minute - time.Second)
	_, ok := memo.Get("admins")
	assert.True(t, ok, "entry should survive until the TTL elapses")

	now = now.Add(time.Second)
	_, ok = memo.Get("admins")
	assert.False(t, ok, "entry should miss once the TTL has elapsed")
}

func TestMemo_SetRefreshesExpiry(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	memo := NewMemoWithClock(5*time.Minute, func() time.Time { return now })

	memo.Set("admins", "first")
	now = now.Add(4 * time.Minute)
	memo.Set("admins", "second")
	now = now.Add(4 * time.Minute)

	value, ok := memo.Get("admins")
	require.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestMemo_Invalidate(t *testing.T) {
	memo := NewMemo(5 * time.Minute)
	memo.Set("admins", "cached")
	memo.Set("teams", "cached")

	memo.Invalidate("admins")

	_, ok := memo.Get("admins")
	assert.False(t, ok)
	_, ok = memo.Get("teams")
	assert.True(t, ok)
}

func TestMemo_InvalidateAll(t *testing.T) {
	memo := NewMemo(5 * time.Minute)
	memo.Set("admins", "cached")
	memo.Set("teams", "cached")

	memo.InvalidateAll()

	_, ok := memo.Get("admins")
	assert.False(t, ok)
	_, ok = memo.Get("teams")
	assert.False(t, ok)
}
