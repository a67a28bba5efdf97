package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(t *testing.T) (*memoryStore, *time.Time) {
	t.Helper()
	current := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemoryStore()
	store.now = func() time.Time { return current }
	return store, &current
}

func TestMemoryStorePutGet(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	require.True(t, store.Put(ctx, "k", []byte("v"), time.Minute))

	value, exists := store.Get(ctx, "k")
	require.True(t, exists)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	store, _ := newTestMemoryStore(t)

	_, exists := store.Get(context.Background(), "never-set")
	assert.False(t, exists)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store, clock := newTestMemoryStore(t)
	ctx := context.Background()

	require.True(t, store.Put(ctx, "k", []byte("v"), time.Second))

	*clock = clock.Add(1500 * time.Millisecond)

	_, exists := store.Get(ctx, "k")
	assert.False(t, exists)
}

func TestMemoryStorePutResetsExpiry(t *testing.T) {
	store, clock := newTestMemoryStore(t)
	ctx := context.Background()

	require.True(t, store.Put(ctx, "k", []byte("v1"), time.Minute))
	*clock = clock.Add(45 * time.Second)
	require.True(t, store.Put(ctx, "k", []byte("v2"), time.Minute))
	*clock = clock.Add(45 * time.Second)

	value, exists := store.Get(ctx, "k")
	require.True(t, exists)
	assert.Equal(t, []byte("v2"), value)
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	assert.True(t, store.Delete(ctx, "absent"))

	store.Put(ctx, "k", []byte("v"), time.Minute)
	assert.True(t, store.Delete(ctx, "k"))
	assert.True(t, store.Delete(ctx, "k"))

	_, exists := store.Get(ctx, "k")
	assert.False(t, exists)
}

func TestMemoryStoreSetMembership(t *testing.T) {
	store, _ := newTestMemoryStore(t)
	ctx := context.Background()

	assert.Empty(t, store.Members(ctx, "fleet"))

	store.AddMember(ctx, "fleet", "TN01")
	store.AddMember(ctx, "fleet", "TN02")
	store.AddMember(ctx, "fleet", "TN01")

	assert.ElementsMatch(t, []string{"TN01", "TN02"}, store.Members(ctx, "fleet"))

	assert.True(t, store.RemoveMember(ctx, "fleet", "TN01"))
	assert.True(t, store.RemoveMember(ctx, "fleet", "never-added"))
	assert.ElementsMatch(t, []string{"TN02"}, store.Members(ctx, "fleet"))
}

func TestNewExpiringStoreFallsBackWithoutRedis(t *testing.T) {
	store := newExpiringStore(nil)

	_, isMemory := store.(*memoryStore)
	assert.True(t, isMemory)
}
