package persona_controller

import (
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/gin-gonic/gin"
)

// ClassifyPersona godoc
// @Summary Classify a completed questionnaire
// @Description Maps the four questionnaire answers to one of the seven personas. All four answers are required and must come from their closed vocabularies.
// @Tags Storefront - Personas
// @Accept json
// @Produce json
// @Param answers body models.QuestionnaireAnswers true "Questionnaire answers"
// @Success 200 {object} models.ApiResponse{data=models.ClassificationResult}
// @Failure 400 {object} models.ApiResponse
// @Router /store/personas/classify [post]
func ClassifyPersona(c *gin.Context) {
	var answers models.QuestionnaireAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "All four answers are required: "+err.Error()))
		return
	}

	persona := services.ClassifyPersona(answers)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Persona classified", models.ClassificationResult{
		Persona:     persona,
		Description: persona.Description(),
	}))
}
