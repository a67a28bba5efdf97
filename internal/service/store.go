package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/client"
)

// ExpiringStore is a put/get/delete abstraction with per-key TTL plus set
// primitives for the active-bus membership. Operations never propagate
// transport errors: a failed write reports false, a failed read reports
// absent. Absence does not distinguish "never set", "expired" and
// "unreachable".
type ExpiringStore interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	Get(ctx context.Context, key string) ([]byte, bool)
	Delete(ctx context.Context, key string) bool
	AddMember(ctx context.Context, set, member string) bool
	RemoveMember(ctx context.Context, set, member string) bool
	Members(ctx context.Context, set string) []string
}

// newExpiringStore selects the backing strategy once at startup. A nil redis
// client means connectivity already failed; the process then commits to the
// in-memory store until restart, losing live state on crash. That limitation
// is accepted and documented rather than papered over with reconnect loops.
func newExpiringStore(redisClient client.RedisClient) ExpiringStore {
	if redisClient == nil {
		return newMemoryStore()
	}
	return &redisStore{
		redisClient: redisClient,
	}
}

type redisStore struct {
	redisClient client.RedisClient
}

func (s *redisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if err := s.redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		logrus.Errorf("Redis error on set %s: %v", key, err)
		return false
	}
	return true
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.Errorf("Redis error on get %s: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (s *redisStore) Delete(ctx context.Context, key string) bool {
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		logrus.Errorf("Redis error on delete %s: %v", key, err)
		return false
	}
	return true
}

func (s *redisStore) AddMember(ctx context.Context, set, member string) bool {
	if err := s.redisClient.SAdd(ctx, set, member).Err(); err != nil {
		logrus.Errorf("Redis error on sadd %s: %v", set, err)
		return false
	}
	return true
}

func (s *redisStore) RemoveMember(ctx context.Context, set, member string) bool {
	if err := s.redisClient.SRem(ctx, set, member).Err(); err != nil {
		logrus.Errorf("Redis error on srem %s: %v", set, err)
		return false
	}
	return true
}

func (s *redisStore) Members(ctx context.Context, set string) []string {
	members, err := s.redisClient.SMembers(ctx, set).Result()
	if err != nil {
		logrus.Errorf("Redis error on smembers %s: %v", set, err)
		return nil
	}
	return members
}

// memoryStore keeps values alongside their expiry instant and checks expiry
// lazily on read. There is no background sweep.
type memoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	sets  map[string]map[string]struct{}
	now   func() time.Time
}

type memoryItem struct {
	value  []byte
	expiry time.Time
}

func newMemoryStore() *memoryStore {
	logrus.Warn("Using in-memory location store (redis not available); live state is lost on restart")
	return &memoryStore{
		items: make(map[string]memoryItem),
		sets:  make(map[string]map[string]struct{}),
		now:   time.Now,
	}
}

func (s *memoryStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memoryItem{
		value:  value,
		expiry: s.now().Add(ttl),
	}
	return true
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[key]
	if !exists {
		return nil, false
	}
	if s.now().After(item.expiry) {
		delete(s.items, key)
		return nil, false
	}
	return item.value, true
}

func (s *memoryStore) Delete(_ context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return true
}

func (s *memoryStore) AddMember(_ context.Context, set, member string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, exists := s.sets[set]
	if !exists {
		members = make(map[string]struct{})
		s.sets[set] = members
	}
	members[member] = struct{}{}
	return true
}

func (s *memoryStore) RemoveMember(_ context.Context, set, member string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if members, exists := s.sets[set]; exists {
		delete(members, member)
	}
	return true
}

func (s *memoryStore) Members(_ context.Context, set string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]string, 0, len(s.sets[set]))
	for member := range s.sets[set] {
		members = append(members, member)
	}
	return members
}
