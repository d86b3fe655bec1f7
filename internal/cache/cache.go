package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store is a redis-backed JSON value cache with namespace-wide invalidation.
// Keys are prefixed with a version counter; Invalidate bumps the counter so
// stale entries simply age out of redis via TTL.
//
// A nil *Store is valid and disables caching.
type Store struct {
	rdb       *redis.Client
	namespace string
	ttl       time.Duration
}

func New(addr, namespace string, ttl time.Duration) *Store {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{
		rdb:       redis.NewClient(&redis.Options{Addr: addr}),
		namespace: namespace,
		ttl:       ttl,
	}
}

func (s *Store) GetJSON(ctx context.Context, key string, dest any) bool {
	if s == nil {
		return false
	}
	b, err := s.rdb.Get(ctx, s.versioned(ctx, key)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

func (s *Store) SetJSON(ctx context.Context, key string, v any) {
	if s == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, s.versioned(ctx, key), b, s.ttl)
}

// Invalidate drops every entry in the namespace.
func (s *Store) Invalidate(ctx context.Context) {
	if s == nil {
		return
	}
	s.rdb.Incr(ctx, s.versionKey())
}

func (s *Store) versionKey() string {
	return s.namespace + ":version"
}

func (s *Store) versioned(ctx context.Context, key string) string {
	v, err := s.rdb.Get(ctx, s.versionKey()).Result()
	if err != nil {
		v = "0"
	}
	return fmt.Sprintf("%s:v%s:%s", s.namespace, v, key)
}
