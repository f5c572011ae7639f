// models/filters.go
package models

// SortKey selects the deal-list ordering.
type SortKey string

const (
	SortByScore     SortKey = "score"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByDiscount  SortKey = "discount"
	SortByNewest    SortKey = "newest"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByScore, SortByPriceLow, SortByPriceHigh, SortByDiscount, SortByNewest:
		return true
	}
	return false
}

// FilterState captures every active deal-list filter selection plus the sort
// order. A fresh state (DefaultFilterState) filters out nothing. Multi-select
// fields are duplicate-suppressed sets; nil bounds mean "unconstrained".
//
// Conditions and Marketplaces are part of the state and count toward the
// active-filter badge, but the filter itself does not consult them yet; the
// storefront UI ships the controls ahead of the backing behavior.
type FilterState struct {
	Categories     []string `json:"categories"`
	Brands         []string `json:"brands"`
	Conditions     []string `json:"conditions"`
	Marketplaces   []string `json:"marketplaces"`
	PriceMin       *float64 `json:"price_min"`
	PriceMax       *float64 `json:"price_max"`
	MinDiscount    *float64 `json:"min_discount"`
	MinScore       *float64 `json:"min_score"`
	OnlyHot        bool     `json:"only_hot"`
	OnlyAllTimeLow bool     `json:"only_all_time_low"`
	SortBy         SortKey  `json:"sort_by"`
}

// DefaultFilterState returns the identity state: no clauses active, newest
// first.
func DefaultFilterState() FilterState {
	return FilterState{SortBy: SortByNewest}
}

// ═══════════════════════════════════════════════════════════
// Filter metadata (storefront filter panel)
// ═══════════════════════════════════════════════════════════

// FilterMetadata represents all filter panel data for the storefront.
type FilterMetadata struct {
	Categories []FacetCount    `json:"categories"`
	Brands     []FacetCount    `json:"brands"`
	PriceRange *PriceRangeData `json:"price_range"`
	HotCount   int             `json:"hot_count"`
}

// FacetCount is one selectable filter value with its deal count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum current price on offer.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
