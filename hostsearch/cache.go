package hostsearch

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sync"
)

// patternCache memoizes the most recently compiled highlight pattern.
// Pattern strings are deterministic for a fixed term and lemma set, so the
// cache hits whenever consecutive requests share a query, and holding a
// single entry keeps it bounded.
type patternCache struct {
	mu  sync.RWMutex
	key string
	re  *regexp.Regexp
}

func newPatternCache() *patternCache {
	return &patternCache{}
}

// compile returns the compiled pattern, reusing the previous compilation
// when the fingerprint matches. Returns nil for an invalid pattern; a nil
// matcher disables snippets for the request rather than failing the search.
func (c *patternCache) compile(pattern string) *regexp.Regexp {
	key := fingerprint(pattern)

	c.mu.RLock()
	if c.key == key && c.re != nil {
		re := c.re
		c.mu.RUnlock()
		return re
	}
	c.mu.RUnlock()

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}

	c.mu.Lock()
	c.key = key
	c.re = re
	c.mu.Unlock()
	return re
}

// fingerprint generates a stable hash of the pattern text.
func fingerprint(pattern string) string {
	h := sha256.New()
	h.Write([]byte(pattern))
	return hex.EncodeToString(h.Sum(nil))
}
