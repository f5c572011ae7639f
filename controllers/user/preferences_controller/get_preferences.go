// ════════════════════════════════════════════════════════════
// Path: controllers/user/preferences_controller/get_preferences.go
// Get authenticated user's saved persona + filter setup
// ════════════════════════════════════════════════════════════

package preferences_controller

import (
	"errors"
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/middleware"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/storage"
	"github.com/gin-gonic/gin"
)

// GetPreferences godoc
// @Summary Get user preferences
// @Description Returns the saved questionnaire result and last filter state; a fresh account gets empty defaults
// @Tags User - Preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.UserPreferences}
// @Failure 401 {object} models.ApiResponse
// @Router /user/preferences [get]
func GetPreferences(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var prefs models.UserPreferences
	err := config.UserStore.Load(c.Request.Context(), storage.PreferencesKey(userID), &prefs)
	if errors.Is(err, storage.ErrNotFound) {
		// Fresh account: empty preferences, default filter state.
		state := models.DefaultFilterState()
		prefs = models.UserPreferences{FilterState: &state}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load preferences"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences fetched", prefs))
}
