package deal_controller

import (
	"net/http"
	"sync"

	filtermeta_cache "github.com/Verity-Deals/verity-deals-backend/cache"
	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDealFilters godoc
// @Summary Get filter panel metadata
// @Description Returns category and brand facets, the catalog price range, and the hot-deal count
// @Tags Storefront - Deals
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/deals/filters [get]
func GetDealFilters(c *gin.Context) {
	if meta, ok := filtermeta_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched (cached)", meta))
		return
	}

	db := config.DealsGorm

	// Run the facet queries concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	wg.Add(1)
	go func() {
		defer wg.Done()
		categories, err := getFacetCounts(db, "category")
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Categories = categories
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		brands, err := getFacetCounts(db, "brand")
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Brands = brands
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, hotCount, err := getPriceRangeAndHotCount(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
			metadata.HotCount = hotCount
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	filtermeta_cache.Set(metadata)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// getFacetCounts returns distinct values of a column with their deal counts,
// most frequent first. Empty values (unbranded deals) are skipped.
func getFacetCounts(db *gorm.DB, column string) ([]models.FacetCount, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var facets []models.FacetCount
	err := db.WithContext(ctx).
		Model(&models.Deal{}).
		Select(column+" AS value, COUNT(*) AS count").
		Where(column + " <> ''").
		Group(column).
		Order("count DESC, value ASC").
		Scan(&facets).Error
	return facets, err
}

func getPriceRangeAndHotCount(db *gorm.DB) (*models.PriceRangeData, int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var result struct {
		Min      float64
		Max      float64
		HotCount int
	}
	err := db.WithContext(ctx).
		Model(&models.Deal{}).
		Select("COALESCE(MIN(current_price), 0) AS min, COALESCE(MAX(current_price), 0) AS max, COUNT(*) FILTER (WHERE is_hot) AS hot_count").
		Scan(&result).Error
	if err != nil {
		return nil, 0, err
	}

	return &models.PriceRangeData{Min: result.Min, Max: result.Max}, result.HotCount, nil
}
