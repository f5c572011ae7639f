// ════════════════════════════════════════════════════════════
// Path: controllers/user/progress_controller/get_progress.go
// Get authenticated user's XP and level
// ════════════════════════════════════════════════════════════

package progress_controller

import (
	"errors"
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/middleware"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/Verity-Deals/verity-deals-backend/storage"
	"github.com/gin-gonic/gin"
)

// GetProgress godoc
// @Summary Get gamification progress
// @Description Returns accumulated XP, the derived level, and the XP still needed for the next level
// @Tags User - Progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/progress [get]
func GetProgress(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var progress models.UserProgress
	err := config.UserStore.Load(c.Request.Context(), storage.ProgressKey(userID), &progress)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load progress"))
		return
	}
	progress.Level = services.LevelForXP(progress.XP)

	toNext, hasNext := services.XPForNextLevel(progress.XP)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Progress fetched", gin.H{
		"xp":               progress.XP,
		"level":            progress.Level,
		"xp_to_next_level": toNext,
		"max_level":        !hasNext,
		"updated_at":       progress.UpdatedAt,
	}))
}
