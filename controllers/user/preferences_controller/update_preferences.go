package preferences_controller

import (
	"net/http"
	"time"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/middleware"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/Verity-Deals/verity-deals-backend/storage"
	"github.com/gin-gonic/gin"
)

type UpdatePreferencesRequest struct {
	Answers     *models.QuestionnaireAnswers `json:"answers"`
	FilterState *models.FilterState          `json:"filter_state"`
}

// UpdatePreferences godoc
// @Summary Save user preferences
// @Description Stores the questionnaire answers (re-classifying the persona server-side) and/or the current filter state
// @Tags User - Preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} models.ApiResponse{data=models.UserPreferences}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/preferences [put]
func UpdatePreferences(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid preferences payload"))
		return
	}

	// Load existing so a partial update keeps the other half.
	var prefs models.UserPreferences
	_ = config.UserStore.Load(c.Request.Context(), storage.PreferencesKey(userID), &prefs)

	if req.Answers != nil {
		if !req.Answers.Complete() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "All four questionnaire answers are required"))
			return
		}
		persona := services.ClassifyPersona(*req.Answers)
		prefs.Answers = req.Answers
		prefs.Persona = &persona
	}
	if req.FilterState != nil {
		if req.FilterState.SortBy == "" {
			req.FilterState.SortBy = models.SortByNewest
		}
		if !req.FilterState.SortBy.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown sort key"))
			return
		}
		prefs.FilterState = req.FilterState
	}
	prefs.UpdatedAt = time.Now().UTC()

	if err := config.UserStore.Save(c.Request.Context(), storage.PreferencesKey(userID), prefs, 0); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save preferences"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences saved", prefs))
}
