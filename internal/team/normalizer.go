package team

import (
	"strings"

	"github.com/pfrederiksen/hockey-stats/internal/logger"
)

const (
	scoreExact      = 1.0
	scorePrefix     = 0.95
	scoreWordPrefix = 0.9
)

// Normalizer resolves short team codes against candidate full names
type Normalizer struct {
	cache *Cache
}

// NewNormalizer creates a normalizer backed by cache. A nil cache starts empty.
func NewNormalizer(cache *Cache) *Normalizer {
	if cache == nil {
		cache = NewCache()
	}
	return &Normalizer{cache: cache}
}

// Cache returns the normalizer's resolution cache
func (n *Normalizer) Cache() *Cache {
	return n.cache
}

// Normalize maps short to one of candidates.
//
// A cached resolution wins. Otherwise an exact case-insensitive match scores
// 1.0 and stops the search, a candidate starting with the code scores 0.95 and
// a candidate with any word starting with the code scores 0.9. On equal scores
// the earliest candidate is kept. When nothing matches, short is returned
// unchanged and nothing is cached.
func (n *Normalizer) Normalize(short string, candidates []string) string {
	short = strings.TrimSpace(short)
	if short == "" {
		logger.Warn("Empty team code", nil)
		return short
	}

	if full, ok := n.cache.Get(short); ok {
		return full
	}

	code := strings.ToUpper(short)
	best, bestScore := "", 0.0

	for _, candidate := range candidates {
		if s := score(code, candidate); s > bestScore {
			best, bestScore = candidate, s
			if s == scoreExact {
				break
			}
		}
	}

	if bestScore == 0 {
		logger.Warn("Could not map team", logger.Fields{
			"short_code": short,
			"candidates": len(candidates),
		})
		return short
	}

	n.cache.Set(short, best)
	logger.Debug("Mapped team", logger.Fields{
		"short_code": short,
		"team":       best,
		"score":      bestScore,
	})
	return best
}

// score rates how well an upper-cased code matches one candidate name
func score(code, candidate string) float64 {
	upper := strings.ToUpper(candidate)
	switch {
	case upper == code:
		return scoreExact
	case strings.HasPrefix(upper, code):
		return scorePrefix
	}
	for _, word := range strings.Fields(upper) {
		if strings.HasPrefix(word, code) {
			return scoreWordPrefix
		}
	}
	return 0
}
