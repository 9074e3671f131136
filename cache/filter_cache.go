package filter_cache

import (
	"sync"
	"time"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Facet options with counts only depend on the immutable catalog, so the
// derivation is cached process-wide. TTL kept for parity with how the other
// caches behave; Invalidate exists for tests.

type metaEntry struct {
	meta      models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func Get() (models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.meta, true
	}
	return models.FilterMetadata{}, false
}

func Set(meta models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{meta: meta, fetchedAt: time.Now()}
}

func Invalidate() {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = nil
}
