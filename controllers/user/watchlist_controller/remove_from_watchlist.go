package watchlist_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/middleware"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RemoveFromWatchlist godoc
// @Summary Unwatch a deal
// @Description Removes a deal from the user's watchlist; unwatching an unwatched deal is a no-op
// @Tags User - Watchlist
// @Security BearerAuth
// @Produce json
// @Param dealID path string true "Deal ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /user/watchlist/{dealID} [delete]
func RemoveFromWatchlist(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	dealID, err := uuid.Parse(c.Param("dealID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid deal ID"))
		return
	}

	var list models.Watchlist
	err = config.UserStore.Load(c.Request.Context(), storage.WatchlistKey(userID), &list)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load watchlist"))
		return
	}

	kept := list.DealIDs[:0]
	removed := false
	for _, id := range list.DealIDs {
		if id == dealID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}

	if removed {
		list.DealIDs = kept
		list.UpdatedAt = time.Now().UTC()
		if err := config.UserStore.Save(c.Request.Context(), storage.WatchlistKey(userID), list, 0); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save watchlist"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Deal removed from watchlist", gin.H{
		"deal_ids": list.DealIDs,
	}))
}
