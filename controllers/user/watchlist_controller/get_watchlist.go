// ════════════════════════════════════════════════════════════
// Path: controllers/user/watchlist_controller/get_watchlist.go
// Get authenticated user's watched deals
// ════════════════════════════════════════════════════════════

package watchlist_controller

import (
	"errors"
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/middleware"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/storage"
	"github.com/gin-gonic/gin"
)

// GetWatchlist godoc
// @Summary Get the user's watchlist
// @Description Returns the watched deals, resolved against the live catalog; deals that have since disappeared are skipped
// @Tags User - Watchlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/watchlist [get]
func GetWatchlist(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var list models.Watchlist
	err := config.UserStore.Load(c.Request.Context(), storage.WatchlistKey(userID), &list)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load watchlist"))
		return
	}

	cards := make([]models.DealCard, 0, len(list.DealIDs))
	if len(list.DealIDs) > 0 {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var deals []models.Deal
		if err := config.DealsGorm.WithContext(ctx).
			Where("id IN ?", list.DealIDs).
			Find(&deals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch watched deals"))
			return
		}

		// Preserve watchlist order.
		byID := make(map[string]models.Deal, len(deals))
		for _, d := range deals {
			byID[d.ID.String()] = d
		}
		for _, id := range list.DealIDs {
			if d, ok := byID[id.String()]; ok {
				cards = append(cards, d.ToCard())
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Watchlist fetched", gin.H{
		"deals":      cards,
		"updated_at": list.UpdatedAt,
	}))
}
