package services

import (
	"sort"

	"github.com/Verity-Deals/verity-deals-backend/models"
)

// FilterDeals applies the filter state to a deal list. The predicate is a
// conjunction of independently-optional clauses; a clause whose field is
// empty/nil/false is skipped. Surviving deals keep their relative order.
//
// Conditions and Marketplaces on the state are deliberately not consulted
// here; see the FilterState doc comment.
func FilterDeals(deals []models.Deal, state models.FilterState) []models.Deal {
	out := make([]models.Deal, 0, len(deals))
	for _, d := range deals {
		if matchesFilter(d, state) {
			out = append(out, d)
		}
	}
	return out
}

func matchesFilter(d models.Deal, state models.FilterState) bool {
	if len(state.Categories) > 0 && !containsString(state.Categories, d.Category) {
		return false
	}
	// An empty brand never matches a non-empty selection.
	if len(state.Brands) > 0 && !containsString(state.Brands, d.Brand) {
		return false
	}
	if state.PriceMin != nil && d.CurrentPrice < *state.PriceMin {
		return false
	}
	if state.PriceMax != nil && d.CurrentPrice > *state.PriceMax {
		return false
	}
	if state.MinDiscount != nil && d.DiscountPercent < *state.MinDiscount {
		return false
	}
	if state.MinScore != nil {
		score := 0.0
		if d.DealScore != nil {
			score = *d.DealScore
		}
		if score < *state.MinScore {
			return false
		}
	}
	if state.OnlyHot && !d.IsHot {
		return false
	}
	if state.OnlyAllTimeLow && !d.IsAllTimeLow {
		return false
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// SortDeals returns a sorted copy of the deal list. Sorting is stable and
// independent of filtering. The "newest" key orders by CreatedAt descending;
// an unknown key leaves the input order untouched.
func SortDeals(deals []models.Deal, key models.SortKey) []models.Deal {
	out := make([]models.Deal, len(deals))
	copy(out, deals)

	switch key {
	case models.SortByScore:
		sort.SliceStable(out, func(i, j int) bool {
			return scoreOrZero(out[i]) > scoreOrZero(out[j])
		})
	case models.SortByPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentPrice < out[j].CurrentPrice
		})
	case models.SortByPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentPrice > out[j].CurrentPrice
		})
	case models.SortByDiscount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DiscountPercent > out[j].DiscountPercent
		})
	case models.SortByNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

func scoreOrZero(d models.Deal) float64 {
	if d.DealScore == nil {
		return 0
	}
	return *d.DealScore
}

// ActiveFilterCount computes the filter badge number. Multi-select filters
// contribute their selection count; scalar filters contribute a 0/1 flag, and
// the two price bounds collapse into a single flag. The asymmetry matches the
// storefront badge exactly.
func ActiveFilterCount(state models.FilterState) int {
	count := len(state.Categories) +
		len(state.Brands) +
		len(state.Conditions) +
		len(state.Marketplaces)

	if state.PriceMin != nil || state.PriceMax != nil {
		count++
	}
	if state.MinDiscount != nil {
		count++
	}
	if state.MinScore != nil {
		count++
	}
	if state.OnlyHot {
		count++
	}
	if state.OnlyAllTimeLow {
		count++
	}
	return count
}
