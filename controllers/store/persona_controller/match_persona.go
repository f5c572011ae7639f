package persona_controller

import (
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/gin-gonic/gin"
)

// MatchPersona godoc
// @Summary Score a persona against product persona tags
// @Description Returns 100 for an exact tag match, 75 for an adjacent persona, 50 otherwise
// @Tags Storefront - Personas
// @Accept json
// @Produce json
// @Param request body models.MatchScoreRequest true "Persona and product tags"
// @Success 200 {object} models.ApiResponse{data=models.MatchScoreResult}
// @Failure 400 {object} models.ApiResponse
// @Router /store/personas/match [post]
func MatchPersona(c *gin.Context) {
	var req models.MatchScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Persona is required"))
		return
	}

	if !req.Persona.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown persona"))
		return
	}

	score := services.MatchScore(req.Persona, req.ProductPersonas)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Match scored", models.MatchScoreResult{
		Persona: req.Persona,
		Score:   score,
		Tier:    services.MatchTier(score),
	}))
}
