package security

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

// CounterStore decides whether a request under the given key may proceed.
type CounterStore interface {
	Allow(ctx context.Context, key string) bool
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryCounterStore keeps one token-bucket limiter per key and evicts idle
// entries in the background.
type MemoryCounterStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

func NewMemoryCounterStore(maxRequests int, window time.Duration) *MemoryCounterStore {
	s := &MemoryCounterStore{
		visitors: make(map[string]*visitor),
		rate:     rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}

	go func() {
		expiry := window * 3
		if expiry < time.Minute {
			expiry = time.Minute
		}
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			s.mu.Lock()
			for key, v := range s.visitors {
				if time.Since(v.lastSeen) > expiry {
					delete(s.visitors, key)
				}
			}
			s.mu.Unlock()
		}
	}()

	return s
}

func (s *MemoryCounterStore) Allow(_ context.Context, key string) bool {
	s.mu.Lock()
	v, exists := s.visitors[key]
	if !exists {
		v = &visitor{
			limiter: rate.NewLimiter(s.rate, s.burst),
		}
		s.visitors[key] = v
	}
	v.lastSeen = time.Now()
	s.mu.Unlock()

	return v.limiter.Allow()
}

// RedisCounterStore counts requests per key in a fixed window, shared across
// processes. A failed redis round trip lets the request through rather than
// blocking traffic.
type RedisCounterStore struct {
	rdb         *redis.Client
	maxRequests int64
	window      time.Duration
	prefix      string
}

func NewRedisCounterStore(rdb *redis.Client, maxRequests int, window time.Duration) *RedisCounterStore {
	return &RedisCounterStore{
		rdb:         rdb,
		maxRequests: int64(maxRequests),
		window:      window,
		prefix:      "ratelimit:",
	}
}

func (s *RedisCounterStore) Allow(ctx context.Context, key string) bool {
	count, err := s.rdb.Incr(ctx, s.prefix+key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		s.rdb.Expire(ctx, s.prefix+key, s.window)
	}
	return count <= s.maxRequests
}
