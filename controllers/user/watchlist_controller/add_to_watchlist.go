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

type AddToWatchlistRequest struct {
	DealID uuid.UUID `json:"deal_id" binding:"required"`
}

// AddToWatchlist godoc
// @Summary Watch a deal
// @Description Adds a deal to the user's watchlist; watching an already-watched deal is a no-op
// @Tags User - Watchlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddToWatchlistRequest true "Deal to watch"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /user/watchlist [post]
func AddToWatchlist(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req AddToWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "deal_id is required"))
		return
	}

	// The deal must exist in the catalog.
	ctx, cancel := config.WithTimeout()
	defer cancel()
	var deal models.Deal
	if err := config.DealsGorm.WithContext(ctx).
		Select("id").
		Where("id = ?", req.DealID).
		First(&deal).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Deal not found"))
		return
	}

	var list models.Watchlist
	err := config.UserStore.Load(c.Request.Context(), storage.WatchlistKey(userID), &list)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load watchlist"))
		return
	}

	if !list.Contains(req.DealID) {
		list.DealIDs = append(list.DealIDs, req.DealID)
		list.UpdatedAt = time.Now().UTC()
		if err := config.UserStore.Save(c.Request.Context(), storage.WatchlistKey(userID), list, 0); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save watchlist"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Deal added to watchlist", gin.H{
		"deal_ids": list.DealIDs,
	}))
}
