package deal_controller

import (
	"strconv"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseFilterState builds a FilterState from the request's query params.
// Multi-select params are repeatable and duplicate-suppressed; absent numeric
// params stay nil (unconstrained). Unknown sort keys fall back to newest.
func parseFilterState(c *gin.Context) models.FilterState {
	state := models.DefaultFilterState()

	state.Categories = dedupe(c.QueryArray("category"))
	state.Brands = dedupe(c.QueryArray("brand"))
	state.Conditions = dedupe(c.QueryArray("condition"))
	state.Marketplaces = dedupe(c.QueryArray("marketplace"))

	state.PriceMin = parseFloatParam(c, "minPrice")
	state.PriceMax = parseFloatParam(c, "maxPrice")
	state.MinDiscount = parseFloatParam(c, "minDiscount")
	state.MinScore = parseFloatParam(c, "minScore")

	state.OnlyHot = c.Query("onlyHot") == "true"
	state.OnlyAllTimeLow = c.Query("onlyAllTimeLow") == "true"

	if key := models.SortKey(c.DefaultQuery("sortBy", "newest")); key.Valid() {
		state.SortBy = key
	}

	return state
}

func parseFloatParam(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────
// Database fetcher
// ─────────────────────────────────────────────────────────────

// fetchCatalog loads the live catalog, newest first. Filtering and sorting
// happen in-process on top of this list.
func fetchCatalog(c *gin.Context) ([]models.Deal, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var deals []models.Deal
	if err := config.DealsGorm.
		WithContext(ctx).
		Order("created_at DESC").
		Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}
