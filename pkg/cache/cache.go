// Package cache is the TTL-bounded, single-flight result cache the
// dispatcher memoizes provider queries through. Contention is scoped to
// the key: fetches for distinct keys proceed fully in parallel.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/singleflight"
)

// Key identifies one cached query result. Scope distinguishes results
// for the same unit and kind that differ by query parameters, such as
// a cost report's date window.
type Key struct {
	AccountID    string
	Region       string
	ResourceKind provider.ResourceKind
	Scope        string
}

// String joins the key parts for the singleflight group.
func (k Key) String() string {
	parts := []string{k.AccountID, k.Region, k.ResourceKind.String()}
	if k.Scope != "" {
		parts = append(parts, k.Scope)
	}
	return strings.Join(parts, "/")
}

// FetchFunc produces the value for a key when no fresh entry exists.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	value     interface{}
	fetchedAt time.Time
}

// Cache stores query results by key. Within the TTL a stored value is
// served without refetching; past it, exactly one refresh runs per key
// no matter how many readers arrive concurrently.
type Cache struct {
	clock clock.Clock

	mu      sync.RWMutex
	entries map[Key]entry
	flight  singleflight.Group
}

// Fetch returns the cached value for key when its age is under ttl,
// otherwise runs fetch once and shares the value or the error with
// every concurrent caller for the same key. Fetch errors are not
// stored; the next call refetches.
func (c *Cache) Fetch(ctx context.Context, key Key, ttl time.Duration, fetch FetchFunc) (interface{}, error) {
	if value, ok := c.fresh(key, ttl); ok {
		return value, nil
	}

	ch := c.flight.DoChan(key.String(), func() (interface{}, error) {
		// A waiter queued behind a completed refresh reads the entry it
		// just populated instead of refetching.
		if value, ok := c.fresh(key, ttl); ok {
			return value, nil
		}

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry{value: value, fetchedAt: c.clock.Now()}
		c.mu.Unlock()
		return value, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, errors.NewCancelled(
			fmt.Sprintf("cache fetch for %q abandoned", key.String()), ctx.Err())
	}
}

// Invalidate forces the next Fetch for the key to refetch.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.flight.Forget(key.String())
}

// InvalidateAccount drops every cached entry for one account. Used when
// an account leaves the fleet so stale rows do not outlive it.
func (c *Cache) InvalidateAccount(accountID string) {
	c.mu.Lock()
	for key := range c.entries {
		if key.AccountID == accountID {
			delete(c.entries, key)
			c.flight.Forget(key.String())
		}
	}
	c.mu.Unlock()
}

func (c *Cache) fresh(key Key, ttl time.Duration) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.clock.Now().Sub(e.fetchedAt) >= ttl {
		return nil, false
	}
	return e.value, true
}

// New creates an empty cache. A nil clock falls back to wall time.
func New(c clock.Clock) *Cache {
	if c == nil {
		c = clock.New()
	}
	return &Cache{
		clock:   c,
		entries: map[Key]entry{},
	}
}
