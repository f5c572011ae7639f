package persona_controller

import (
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/gin-gonic/gin"
)

// RecommendDeals godoc
// @Summary Recommend deals for a questionnaire result
// @Description Classifies the answers, scores every catalog deal against the resulting persona, and returns the catalog ranked by match score (deal score breaks ties)
// @Tags Storefront - Personas
// @Accept json
// @Produce json
// @Param answers body models.QuestionnaireAnswers true "Questionnaire answers"
// @Param limit query int false "Max results" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/personas/recommendations [post]
func RecommendDeals(c *gin.Context) {
	var answers models.QuestionnaireAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "All four answers are required: "+err.Error()))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if limit < 1 || limit > 100 {
		limit = 12
	}

	persona := services.ClassifyPersona(answers)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var catalog []models.Deal
	if err := config.DealsGorm.WithContext(ctx).
		Order("created_at DESC").
		Find(&catalog).Error; err != nil {
		log.Printf("ERROR fetching catalog for recommendations: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch deals"))
		return
	}

	recommended := make([]models.RecommendedDeal, 0, len(catalog))
	for _, deal := range catalog {
		recommended = append(recommended, models.RecommendedDeal{
			Deal:       deal.ToCard(),
			MatchScore: services.MatchScore(persona, deal.Personas),
		})
	}

	// Rank by match tier, then deal score within a tier.
	sort.SliceStable(recommended, func(i, j int) bool {
		if recommended[i].MatchScore != recommended[j].MatchScore {
			return recommended[i].MatchScore > recommended[j].MatchScore
		}
		return scoreOrZero(recommended[i].Deal.DealScore) > scoreOrZero(recommended[j].Deal.DealScore)
	})

	if len(recommended) > limit {
		recommended = recommended[:limit]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recommendations fetched", gin.H{
		"persona":     persona,
		"description": persona.Description(),
		"deals":       recommended,
	}))
}

func scoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}
