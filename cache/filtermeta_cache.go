package filtermeta_cache

import (
	"sync"
	"time"

	"github.com/Verity-Deals/verity-deals-backend/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Stores the storefront filter panel data (category/brand facets, price
// range, hot count). Rebuilt from the deals table on miss.

type metaEntry struct {
	meta      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func Get() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.meta, true
	}
	return nil, false
}

func Set(meta *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{meta: meta, fetchedAt: time.Now()}
}

// ── Invalidate (call on any deal create/update/delete) ───────────────────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
