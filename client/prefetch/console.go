package prefetch

import (
	"context"
	"sync"
)

// Console tracks the current page and loads what it needs in the background.
// Screens only read the cache snapshot.
type Console struct {
	cache *Cache

	mu         sync.Mutex
	page       Page
	generation uint64
	wg         sync.WaitGroup
}

// NewConsole opens the console on the dashboard and starts loading it.
func NewConsole(ctx context.Context, cache *Cache) *Console {
	c := &Console{cache: cache}
	c.Navigate(ctx, PageDashboard)
	return c
}

// Navigate switches to the page and returns the navigation generation.
// A render tagged with an older generation belongs to a page the user already left.
func (c *Console) Navigate(ctx context.Context, page Page) uint64 {
	c.mu.Lock()
	c.page = page
	c.generation++
	generation := c.generation
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.cache.EnsureLoaded(ctx, page)
	}()

	return generation
}

// Current returns the page being shown and its generation.
func (c *Console) Current() (Page, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page, c.generation
}

// IsCurrent reports whether a render started at the generation is still relevant.
func (c *Console) IsCurrent(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation == generation
}

// Cache behind the console.
func (c *Console) Cache() *Cache {
	return c.cache
}

// Wait blocks until every background load has settled.
func (c *Console) Wait() {
	c.wg.Wait()
}
