package user_routes

import (
	"github.com/Verity-Deals/verity-deals-backend/controllers/user/preferences_controller"
	"github.com/Verity-Deals/verity-deals-backend/controllers/user/progress_controller"
	"github.com/Verity-Deals/verity-deals-backend/controllers/user/watchlist_controller"
	"github.com/Verity-Deals/verity-deals-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all user state routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		// Preferences (persona + saved filter state)
		user.GET("/preferences", preferences_controller.GetPreferences)
		user.PUT("/preferences", preferences_controller.UpdatePreferences)

		// Watchlist
		user.GET("/watchlist", watchlist_controller.GetWatchlist)
		user.POST("/watchlist", watchlist_controller.AddToWatchlist)
		user.DELETE("/watchlist/:dealID", watchlist_controller.RemoveFromWatchlist)

		// Gamification progress
		user.GET("/progress", progress_controller.GetProgress)
		user.POST("/progress", progress_controller.AwardXP)
	}
}
