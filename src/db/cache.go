package db

import (
	"fmt"
	"sync"
	"time"

	"financezenn-server/src/models"

	"github.com/dgraph-io/ristretto/v2"
)

// SummaryCache holds computed dashboard summaries per user. Each user has a
// generation that Invalidate bumps; a summary computed under an older
// generation is never stored.
type SummaryCache struct {
	cache *ristretto.Cache[string, models.FinancialSummary]
	ttl   time.Duration

	mu   sync.Mutex
	gens map[int64]uint64
}

func NewSummaryCache(ttl time.Duration) (*SummaryCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, models.FinancialSummary]{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return &SummaryCache{cache: cache, ttl: ttl, gens: make(map[int64]uint64)}, nil
}

func summaryKey(userID int64) string {
	return fmt.Sprintf("summary:%d", userID)
}

func (c *SummaryCache) Get(userID int64) (models.FinancialSummary, bool) {
	return c.cache.Get(summaryKey(userID))
}

// Generation is read before loading the records a summary is built from.
func (c *SummaryCache) Generation(userID int64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[userID]
}

// Set stores the summary only if no write invalidated the user since gen was
// read, and reports whether it did. Wait makes it visible to the next Get.
func (c *SummaryCache) Set(userID int64, gen uint64, s models.FinancialSummary) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[userID] != gen {
		return false
	}
	c.cache.SetWithTTL(summaryKey(userID), s, 1, c.ttl)
	c.cache.Wait()
	return true
}

// Invalidate drops the user's summary after a write.
func (c *SummaryCache) Invalidate(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[userID]++
	c.cache.Del(summaryKey(userID))
}

func (c *SummaryCache) Close() {
	c.cache.Close()
}
