// Package trends wraps the trending-searches upstream with a single-slot
// TTL cache and a static fallback list.
package trends

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const maxTerms = 20

// Fallback is served whenever the upstream fails or returns nothing.
var Fallback = []string{"local events", "breaking news", "festival", "Premier League", "back to school"}

// Source is the upstream trending-searches lookup.
type Source interface {
	TrendingSearches(ctx context.Context, geo, lang string, tz int) ([]string, error)
}

// Cache memoizes one trending-terms lookup keyed by geo+lang. It holds a
// single slot: fetching a different key replaces whatever was stored, and a
// valid entry for another key does not satisfy the lookup. A failed or empty
// fetch leaves the slot untouched so a transient error cannot evict a
// still-valid entry.
type Cache struct {
	source Source
	group  singleflight.Group

	mu      sync.Mutex
	key     string
	terms   []string
	expires time.Time

	now func() time.Time
}

func NewCache(source Source) *Cache {
	return &Cache{
		source: source,
		now:    time.Now,
	}
}

// TrendingTerms returns up to 20 trending search terms for the geo/lang pair,
// cached for max(60, ttlSeconds) seconds. Concurrent misses for the same key
// share a single upstream call.
func (c *Cache) TrendingTerms(ctx context.Context, geo, lang string, tz, ttlSeconds int) []string {
	geo = strings.ToUpper(strings.TrimSpace(geo))
	if geo == "" {
		geo = "GB"
	}
	key := geo + ":" + lang

	c.mu.Lock()
	if c.key == key && c.now().Before(c.expires) {
		terms := c.terms
		c.mu.Unlock()
		return terms
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.source.TrendingSearches(ctx, geo, lang, tz)
	})
	if err != nil {
		log.Warn().Err(err).Str("geo", geo).Str("lang", lang).Msg("trends upstream failed, serving fallback")
		return Fallback
	}

	terms := cleanTerms(v.([]string))
	if len(terms) == 0 {
		log.Warn().Str("geo", geo).Str("lang", lang).Msg("trends upstream returned no terms, serving fallback")
		return Fallback
	}

	ttl := ttlSeconds
	if ttl < 60 {
		ttl = 60
	}

	c.mu.Lock()
	c.key = key
	c.terms = terms
	c.expires = c.now().Add(time.Duration(ttl) * time.Second)
	c.mu.Unlock()

	return terms
}

func cleanTerms(raw []string) []string {
	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		terms = append(terms, t)
		if len(terms) >= maxTerms {
			break
		}
	}
	return terms
}
