// Package prefetch keeps the console data on the client side.
//
// The Cache is the only component that fetches: screens read Snapshot and
// never call the API themselves. A page's domains are fetched at most once
// until they are invalidated, failures leave the previous data in place and
// the loading flag of a page is cleared whatever the outcome.
package prefetch

import (
	"context"
	"errors"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/messages"
	"fitconsole/pkg/models"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ErrUnknownPage is returned for pages without a load mapping.
var ErrUnknownPage = errors.New("unknown page")

// Fetcher is the part of the API the cache needs.
type Fetcher interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GetMembers(ctx context.Context) ([]models.Member, error)
	GetPayments(ctx context.Context) ([]models.Payment, error)
	GetAccessLogs(ctx context.Context) ([]models.AccessLog, error)
	SeedData(ctx context.Context, idempotent bool) (string, error)
}

// State is a read-only view of the cached data.
type State struct {
	DashboardStats *models.DashboardStats
	Members        []models.Member
	Trainers       []models.Trainer
	Consultations  []models.Consultation
	Payments       []models.Payment
	AccessLogs     []models.AccessLog
	Branches       []models.Branch
	Users          []models.User
	Loading        map[Page]bool
}

// Cache holds one slot per domain.
type Cache struct {
	fetcher Fetcher
	catalog *Catalog
	logger  logger.Interface
	group   singleflight.Group

	mu          sync.Mutex
	state       State
	loaded      map[Domain]bool
	generation  map[Domain]uint64
	inflight    map[Page]int
	subscribers map[int]chan State
	nextSub     int
}

// CacheDeps is the dependency list for the cache.
type CacheDeps struct {
	Fetcher Fetcher
	Catalog *Catalog
	Logger  logger.Interface
}

// NewCache creates an empty cache.
func NewCache(deps *CacheDeps) *Cache {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop{}
	}

	return &Cache{
		fetcher:     deps.Fetcher,
		catalog:     catalog,
		logger:      log,
		state:       State{Loading: map[Page]bool{}},
		loaded:      map[Domain]bool{},
		generation:  map[Domain]uint64{},
		inflight:    map[Page]int{},
		subscribers: map[int]chan State{},
	}
}

// EnsureLoaded makes sure the page's domains are resident.
// Resident domains cost no I/O. Fetch failures are logged and swallowed, the
// only error is for a page without a mapping. Concurrent calls for the same
// page share one fetch, unless one of its domains was invalidated since that
// fetch started.
func (c *Cache) EnsureLoaded(ctx context.Context, page Page) error {
	domains, ok := DomainsOf(page)
	if !ok {
		c.logger.Errorf(messages.UnknownPageMsg, page)
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	started, resident := c.check(domains)
	if resident {
		return nil
	}

	c.group.Do(flightKey(page, domains, started), func() (any, error) {
		c.load(ctx, page, domains, started)
		return nil, nil
	})
	return nil
}

// check reports whether the domains are resident and captures their generations.
func (c *Cache) check(domains []Domain) (map[Domain]uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	started := make(map[Domain]uint64, len(domains))
	resident := true
	for _, domain := range domains {
		started[domain] = c.generation[domain]
		if !c.residentLocked(domain) {
			resident = false
		}
	}
	return started, resident
}

func flightKey(page Page, domains []Domain, started map[Domain]uint64) string {
	var b strings.Builder
	b.WriteString(string(page))
	for _, domain := range domains {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(started[domain], 10))
	}
	return b.String()
}

// Fetch result waiting to be merged.
type fetched struct {
	stats      *models.DashboardStats
	members    []models.Member
	payments   []models.Payment
	accessLogs []models.AccessLog
}

// load fetches the page's domains and merges them if every fetch succeeded.
func (c *Cache) load(ctx context.Context, page Page, domains []Domain, started map[Domain]uint64) {
	c.begin(page)
	defer c.finish(page)

	var result fetched
	g, gctx := errgroup.WithContext(ctx)
	for _, domain := range domains {
		if domain.Kind() == LocalOnly {
			continue
		}
		g.Go(func() error {
			return c.fetch(gctx, domain, &result)
		})
	}

	// Both dashboard fetches are awaited, nothing lands unless all succeed.
	if err := g.Wait(); err != nil {
		c.logger.Errorf(messages.PrefetchFailedMsg, page, err)
		return
	}

	c.merge(domains, started, result)
}

// fetch calls the API for one remote domain and keeps the result in its field.
func (c *Cache) fetch(ctx context.Context, domain Domain, result *fetched) error {
	var err error
	switch domain {
	case DashboardStats:
		result.stats, err = c.fetcher.GetDashboardStats(ctx)
	case Members:
		result.members, err = c.fetcher.GetMembers(ctx)
	case Payments:
		result.payments, err = c.fetcher.GetPayments(ctx)
	case AccessLogs:
		result.accessLogs, err = c.fetcher.GetAccessLogs(ctx)
	}
	return err
}

// begin raises the page's loading flag.
func (c *Cache) begin(page Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight[page]++
	c.state.Loading[page] = true
	c.publishLocked()
}

// finish clears the page's loading flag once its last load is done.
func (c *Cache) finish(page Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight[page]--
	if c.inflight[page] <= 0 {
		delete(c.inflight, page)
		c.state.Loading[page] = false
	}
	c.publishLocked()
}

// merge writes the fetched slots, skipping domains invalidated since the fetch started.
func (c *Cache) merge(domains []Domain, started map[Domain]uint64, result fetched) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, domain := range domains {
		if c.generation[domain] != started[domain] {
			c.logger.Infof(messages.StaleResponseDropMsg, domain)
			continue
		}

		if domain.Kind() == LocalOnly {
			c.fillLocked(domain)
		} else {
			c.storeLocked(domain, result)
		}
		c.loaded[domain] = true
	}
}

func (c *Cache) storeLocked(domain Domain, result fetched) {
	switch domain {
	case DashboardStats:
		c.state.DashboardStats = result.stats
	case Members:
		c.state.Members = orEmpty(result.members)
	case Payments:
		c.state.Payments = orEmpty(result.payments)
	case AccessLogs:
		c.state.AccessLogs = orEmpty(result.accessLogs)
	}
}

// fillLocked copies the catalog slice of a local-only domain.
func (c *Cache) fillLocked(domain Domain) {
	switch domain {
	case Trainers:
		c.state.Trainers = clone(c.catalog.Trainers)
	case Consultations:
		c.state.Consultations = clone(c.catalog.Consultations)
	case Branches:
		c.state.Branches = clone(c.catalog.Branches)
	case Users:
		c.state.Users = clone(c.catalog.Users)
	}
}

func (c *Cache) residentLocked(domain Domain) bool {
	if c.loaded[domain] {
		return true
	}

	switch domain {
	case DashboardStats:
		return c.state.DashboardStats != nil
	case Members:
		return len(c.state.Members) > 0
	case Trainers:
		return len(c.state.Trainers) > 0
	case Consultations:
		return len(c.state.Consultations) > 0
	case Payments:
		return len(c.state.Payments) > 0
	case AccessLogs:
		return len(c.state.AccessLogs) > 0
	case Branches:
		return len(c.state.Branches) > 0
	case Users:
		return len(c.state.Users) > 0
	}
	return false
}

// Invalidate empties the domain's slot.
// A fetch already in flight for it is discarded when it returns.
func (c *Cache) Invalidate(domain Domain) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidateLocked(domain)
	c.publishLocked()
}

func (c *Cache) invalidateLocked(domain Domain) {
	c.generation[domain]++
	c.loaded[domain] = false

	switch domain {
	case DashboardStats:
		c.state.DashboardStats = nil
	case Members:
		c.state.Members = nil
	case Trainers:
		c.state.Trainers = nil
	case Consultations:
		c.state.Consultations = nil
	case Payments:
		c.state.Payments = nil
	case AccessLogs:
		c.state.AccessLogs = nil
	case Branches:
		c.state.Branches = nil
	case Users:
		c.state.Users = nil
	}
}

// Seed asks the API for the sample batch and drops the domains it replaced.
func (c *Cache) Seed(ctx context.Context, idempotent bool) (string, error) {
	message, err := c.fetcher.SeedData(ctx, idempotent)
	if err != nil {
		c.logger.Errorf("couldn't seed the sample data: %v", err)
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, domain := range seedDomains {
		c.invalidateLocked(domain)
	}
	c.publishLocked()

	return message, nil
}

// Snapshot returns a copy of the current state.
// The slices are copies, the records themselves must be treated as read-only.
func (c *Cache) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *Cache) snapshotLocked() State {
	state := State{
		Members:       clone(c.state.Members),
		Trainers:      clone(c.state.Trainers),
		Consultations: clone(c.state.Consultations),
		Payments:      clone(c.state.Payments),
		AccessLogs:    clone(c.state.AccessLogs),
		Branches:      clone(c.state.Branches),
		Users:         clone(c.state.Users),
		Loading:       make(map[Page]bool, len(c.state.Loading)),
	}
	if c.state.DashboardStats != nil {
		stats := *c.state.DashboardStats
		state.DashboardStats = &stats
	}
	for page, loading := range c.state.Loading {
		state.Loading[page] = loading
	}
	return state
}

// Subscribe returns a channel receiving the state after every change and its cancel func.
// Only the latest state is kept for a slow subscriber.
func (c *Cache) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan State, 1)
	c.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			delete(c.subscribers, id)
			close(ch)
		})
	}
}

// publishLocked hands the new state to every subscriber, replacing an unread one.
func (c *Cache) publishLocked() {
	if len(c.subscribers) == 0 {
		return
	}

	state := c.snapshotLocked()
	for _, ch := range c.subscribers {
		select {
		case ch <- state:
			continue
		default:
		}

		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
