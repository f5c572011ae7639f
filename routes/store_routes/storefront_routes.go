package store_routes

import (
	"github.com/Verity-Deals/verity-deals-backend/controllers/store/deal_controller"
	"github.com/Verity-Deals/verity-deals-backend/controllers/store/persona_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Deal routes
	deals := store.Group("/deals")
	{
		deals.GET("", deal_controller.GetDeals) // List with filters

		deals.GET("/filters", deal_controller.GetDealFilters) // Filter panel metadata
		deals.GET("/stats", deal_controller.GetDealStats)     // Dashboard strip
		deals.GET("/:id", deal_controller.GetDealByID)        // Single deal
	}

	// Persona routes
	personas := store.Group("/personas")
	{
		personas.GET("", persona_controller.GetPersonas)
		personas.POST("/classify", persona_controller.ClassifyPersona)
		personas.POST("/match", persona_controller.MatchPersona)
		personas.POST("/recommendations", persona_controller.RecommendDeals)
	}
}
