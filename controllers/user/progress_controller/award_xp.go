package progress_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/middleware"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/Verity-Deals/verity-deals-backend/storage"
	"github.com/gin-gonic/gin"
)

// xpAwards maps gamification events to their XP values. The event vocabulary
// is closed; anything else is rejected.
var xpAwards = map[string]int{
	"deal_viewed":    services.XPDealViewed,
	"deal_saved":     services.XPDealSaved,
	"quiz_completed": services.XPQuizCompleted,
	"deal_purchased": services.XPDealPurchased,
	"streak_day":     services.XPStreakDay,
}

type AwardXPRequest struct {
	Event string `json:"event" binding:"required,oneof=deal_viewed deal_saved quiz_completed deal_purchased streak_day"`
}

// AwardXP godoc
// @Summary Record a gamification event
// @Description Adds the event's XP to the user's total and reports whether a level-up happened
// @Tags User - Progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AwardXPRequest true "Gamification event"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /user/progress [post]
func AwardXP(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req AwardXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown gamification event"))
		return
	}

	var progress models.UserProgress
	err := config.UserStore.Load(c.Request.Context(), storage.ProgressKey(userID), &progress)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load progress"))
		return
	}

	before := services.LevelForXP(progress.XP)
	progress.XP += xpAwards[req.Event]
	progress.Level = services.LevelForXP(progress.XP)
	progress.UpdatedAt = time.Now().UTC()

	if err := config.UserStore.Save(c.Request.Context(), storage.ProgressKey(userID), progress, 0); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save progress"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "XP awarded", gin.H{
		"xp":         progress.XP,
		"level":      progress.Level,
		"leveled_up": progress.Level > before,
	}))
}
