package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"trivia-cli/internal/domain"
)

// CategorySource lists the provider's trivia categories.
type CategorySource interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryCache caches the category list with TTL so repeated visits to the
// settings screen don't re-fetch. The list is a non-critical enhancement:
// fetch failures degrade to an empty list instead of propagating.
type CategoryCache struct {
	source CategorySource
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    []domain.Category
	expiresAt time.Time
}

func NewCategoryCache(source CategorySource, ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Categories returns the cached list, refreshing it when expired. Errors
// yield an empty list and leave the cache unfilled so the next call retries.
func (c *CategoryCache) Categories(ctx context.Context) []domain.Category {
	now := c.clock()

	c.mu.RLock()
	if c.cached != nil && c.expiresAt.After(now) {
		cached := c.cached
		c.mu.RUnlock()
		return cached
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("categories", func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if c.cached != nil && c.expiresAt.After(now) {
			cached := c.cached
			c.mu.RUnlock()
			return cached, nil
		}
		c.mu.RUnlock()

		categories, err := c.source.ListCategories(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = categories
		c.expiresAt = now.Add(c.ttlWithJitter())
		c.mu.Unlock()
		return categories, nil
	})
	if err != nil {
		return nil
	}
	return result.([]domain.Category)
}

func (c *CategoryCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
