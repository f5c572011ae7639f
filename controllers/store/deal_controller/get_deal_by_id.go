package deal_controller

import (
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDealByID godoc
// @Summary Get a single deal
// @Description Retrieve full deal details including specs and price history
// @Tags Storefront - Deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} models.ApiResponse{data=models.Deal}
// @Failure 404 {object} models.ApiResponse
// @Router /store/deals/{id} [get]
func GetDealByID(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid deal ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var deal models.Deal
	if err := config.DealsGorm.WithContext(ctx).
		Where("id = ?", dealID).
		First(&deal).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Deal not found"))
		return
	}

	// Bump the view counter out of band; a lost increment is fine.
	go func() {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		config.DealsGorm.WithContext(ctx).
			Model(&models.Deal{}).
			Where("id = ?", dealID).
			UpdateColumn("views", gorm.Expr("views + 1"))
	}()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Deal fetched", deal))
}
