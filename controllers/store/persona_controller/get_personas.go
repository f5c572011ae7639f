package persona_controller

import (
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPersonas godoc
// @Summary List all personas
// @Description Returns the seven personas with descriptions and their similarity sets
// @Tags Storefront - Personas
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.PersonaInfo}
// @Router /store/personas [get]
func GetPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Personas fetched", models.PersonaReference()))
}
