package auth_controller

import (
	"net/http"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/Verity-Deals/verity-deals-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new shopper
// @Description Creates an account and returns a signed JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email, name, and password are required"))
		return
	}

	authService := services.GetAuthService()
	if !authService.ValidatePassword(req.Password) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Password must be at least 8 characters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	err := config.DealsGorm.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Status:       "active",
	}
	if err := config.DealsGorm.WithContext(ctx).Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", gin.H{
		"user":  user.ToResponse(),
		"token": token,
	}))
}
