package auth_controller

import (
	"net/http"
	"os"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/Verity-Deals/verity-deals-backend/services"
	"github.com/Verity-Deals/verity-deals-backend/utils"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log a shopper in
// @Description Verifies credentials and returns a signed JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DealsGorm.WithContext(ctx).
		Where("email = ? AND status = ?", req.Email, "active").
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if !services.GetAuthService().VerifyPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	setAuthCookie(c, token)

	// Best effort; login proceeds even if the event insert fails.
	_ = utils.LogLoginEvent(c, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", gin.H{
		"user":  user.ToResponse(),
		"token": token,
	}))
}

// setAuthCookie mirrors the token into an HTTP-only cookie for browser
// clients; API clients keep using the Authorization header.
func setAuthCookie(c *gin.Context, token string) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, 24*60*60, "/", "", secure, true)
}
