package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"budgetplanner/internal/logging"
)

// DefaultSize is the number of prices kept when no size is configured
const DefaultSize = 100

// Stats reports cache effectiveness counters
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
}

// PriceCache is a fixed-capacity, least-recently-used cache of unit prices keyed by query
type PriceCache struct {
	entries   *lru.Cache[string, float64]
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewPriceCache creates a new price cache holding at most size entries
func NewPriceCache(size int) (*PriceCache, error) {
	if size <= 0 {
		size = DefaultSize
	}

	pc := &PriceCache{}
	entries, err := lru.NewWithEvict(size, func(key string, _ float64) {
		pc.evictions.Add(1)
		logging.Debug("Evicted cached price", map[string]interface{}{
			"key": key,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create price cache: %w", err)
	}
	pc.entries = entries

	return pc, nil
}

// Get retrieves a price from the cache and marks it recently used
func (pc *PriceCache) Get(key string) (float64, bool) {
	price, ok := pc.entries.Get(key)
	if ok {
		pc.hits.Add(1)
	} else {
		pc.misses.Add(1)
	}
	return price, ok
}

// Set stores a price in the cache, evicting the least recently used entry when full
func (pc *PriceCache) Set(key string, price float64) {
	pc.entries.Add(key, price)
}

// GetOrLoad returns the cached price for key, calling load on a miss.
// The loaded value is stored only when load reports ok.
func (pc *PriceCache) GetOrLoad(key string, load func() (float64, bool)) (float64, bool) {
	if price, ok := pc.Get(key); ok {
		return price, true
	}
	price, ok := load()
	if ok {
		pc.Set(key, price)
	}
	return price, ok
}

// Len returns the number of cached prices
func (pc *PriceCache) Len() int {
	return pc.entries.Len()
}

// Purge drops every cached price
func (pc *PriceCache) Purge() {
	pc.entries.Purge()
}

// Stats returns a snapshot of the cache counters
func (pc *PriceCache) Stats() Stats {
	return Stats{
		Hits:      pc.hits.Load(),
		Misses:    pc.misses.Load(),
		Evictions: pc.evictions.Load(),
		Entries:   pc.entries.Len(),
	}
}
