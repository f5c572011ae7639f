package deal_controller

import (
	"log"
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/gin-gonic/gin"
)

// GetDeals godoc
// @Summary Get storefront deals with filters
// @Description Retrieve deals with optional category, brand, price, discount, score, hot, and all-time-low filters, plus sorting.
// @Tags Storefront - Deals
// @Produce json
// @Param category query []string false "Categories (repeatable)"
// @Param brand query []string false "Brands (repeatable)"
// @Param condition query []string false "Conditions (repeatable)"
// @Param marketplace query []string false "Marketplaces (repeatable)"
// @Param minPrice query number false "Minimum current price"
// @Param maxPrice query number false "Maximum current price"
// @Param minDiscount query number false "Minimum discount percent"
// @Param minScore query number false "Minimum deal score"
// @Param onlyHot query bool false "Hot deals only"
// @Param onlyAllTimeLow query bool false "All-time-low deals only"
// @Param sortBy query string false "Sort key (score | price-low | price-high | discount | newest)" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Deals fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/deals [get]
func GetDeals(c *gin.Context) {
	page, limit := parsePagination(c)
	state := parseFilterState(c)

	catalog, err := fetchCatalog(c)
	if err != nil {
		log.Printf("ERROR fetching catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch deals"))
		return
	}

	filtered := services.FilterDeals(catalog, state)
	sorted := services.SortDeals(filtered, state.SortBy)

	totalCount := len(sorted)
	totalPages := (totalCount + limit - 1) / limit

	start := (page - 1) * limit
	if start > totalCount {
		start = totalCount
	}
	end := start + limit
	if end > totalCount {
		end = totalCount
	}

	cards := make([]models.DealCard, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, sorted[i].ToCard())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Deals fetched successfully",
		gin.H{
			"deals":          cards,
			"active_filters": services.ActiveFilterCount(state),
		},
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
