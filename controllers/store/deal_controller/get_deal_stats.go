package deal_controller

import (
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/gin-gonic/gin"
)

// GetDealStats godoc
// @Summary Get deal statistics
// @Description Returns overall catalog stats for the storefront dashboard strip
// @Tags Storefront - Deals
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/deals/stats [get]
func GetDealStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Count total deals
	var totalDeals int64
	if err := config.DealsGorm.WithContext(ctx).
		Model(&models.Deal{}).
		Count(&totalDeals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count total deals"))
		return
	}

	// Step 2: Count hot deals
	var hotDeals int64
	if err := config.DealsGorm.WithContext(ctx).
		Model(&models.Deal{}).
		Where("is_hot = ?", true).
		Count(&hotDeals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count hot deals"))
		return
	}

	// Step 3: Count all-time lows
	var allTimeLows int64
	if err := config.DealsGorm.WithContext(ctx).
		Model(&models.Deal{}).
		Where("is_all_time_low = ?", true).
		Count(&allTimeLows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count all-time lows"))
		return
	}

	// Step 4: Average discount
	var averageDiscount float64
	if err := config.DealsGorm.WithContext(ctx).
		Model(&models.Deal{}).
		Select("COALESCE(AVG(discount_percent), 0)").
		Scan(&averageDiscount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to calculate average discount"))
		return
	}

	// Step 5: Best current deal score
	var bestScore float64
	if err := config.DealsGorm.WithContext(ctx).
		Model(&models.Deal{}).
		Select("COALESCE(MAX(deal_score), 0)").
		Scan(&bestScore).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to find best deal score"))
		return
	}

	stats := gin.H{
		"total_deals":      totalDeals,
		"hot_deals":        hotDeals,
		"all_time_lows":    allTimeLows,
		"average_discount": averageDiscount,
		"best_deal_score":  bestScore,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Deal stats fetched", stats))
}
