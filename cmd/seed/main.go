package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Verity-Deals/verity-deals-backend/config"
	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and loads the fixture catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VERITY DEALS - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	// Migrate schema
	if err := config.DealsGorm.AutoMigrate(&models.User{}, &models.Deal{}, &models.LoginEvent{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	seeded := 0
	for _, deal := range fixtureDeals() {
		deal.IsAllTimeLow = deal.ComputeAllTimeLow()

		var existing models.Deal
		if err := config.DealsGorm.Where("title = ?", deal.Title).First(&existing).Error; err == nil {
			continue // already seeded
		}

		if err := config.DealsGorm.Create(&deal).Error; err != nil {
			log.Fatalf("Failed to seed deal %q: %v", deal.Title, err)
		}
		seeded++
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Catalog Seeded (%d new deals)\n", seeded)
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse deals at GET /api/v1/store/deals")
	fmt.Println("3. Classify a persona at POST /api/v1/store/personas/classify")
	fmt.Println()
}

func score(v float64) *float64 { return &v }

func history(prices ...float64) models.PriceHistoryList {
	points := make(models.PriceHistoryList, 0, len(prices))
	now := time.Now().UTC()
	for i, p := range prices {
		points = append(points, models.PricePoint{
			Price:      p,
			RecordedAt: now.AddDate(0, 0, -(len(prices)-i)*7),
		})
	}
	return points
}

// fixtureDeals is the fixed development catalog. Prices and discounts are
// stable so filter and recommendation behavior is reproducible.
func fixtureDeals() []models.Deal {
	return []models.Deal{
		{
			Title:           "ThinkPad X1 Carbon Gen 12",
			Category:        "Laptops",
			Brand:           "Lenovo",
			Condition:       "new",
			Marketplace:     "amazon",
			CurrentPrice:    1299,
			OriginalPrice:   1649,
			DiscountPercent: 21,
			DealScore:       score(88),
			IsHot:           true,
			Personas:        models.PersonaTags{"Business Traveler", "Digital Nomad"},
			Specs:           datatypes.JSONMap{"weight_kg": 1.09, "battery_wh": 57},
			PriceHistory:    history(1649, 1499, 1399),
		},
		{
			Title:           "MacBook Air 13 M3",
			Category:        "Laptops",
			Brand:           "Apple",
			Condition:       "new",
			Marketplace:     "bestbuy",
			CurrentPrice:    899,
			OriginalPrice:   1099,
			DiscountPercent: 18,
			DealScore:       score(92),
			IsHot:           true,
			Personas:        models.PersonaTags{"Versatile Student", "Digital Nomad", "Creative Professional"},
			Specs:           datatypes.JSONMap{"weight_kg": 1.24, "battery_wh": 52.6},
			PriceHistory:    history(1099, 999, 949, 899),
		},
		{
			Title:           "ROG Zephyrus G14",
			Category:        "Laptops",
			Brand:           "ASUS",
			Condition:       "new",
			Marketplace:     "amazon",
			CurrentPrice:    1449,
			OriginalPrice:   1799,
			DiscountPercent: 19,
			DealScore:       score(85),
			Personas:        models.PersonaTags{"Competitive Gamer", "Power User"},
			Specs:           datatypes.JSONMap{"gpu": "RTX 4060", "refresh_hz": 165},
			PriceHistory:    history(1799, 1599, 1399),
		},
		{
			Title:           "Framework Laptop 13 DIY",
			Category:        "Laptops",
			Brand:           "Framework",
			Condition:       "new",
			Marketplace:     "framework",
			CurrentPrice:    1049,
			OriginalPrice:   1049,
			DiscountPercent: 0,
			DealScore:       score(74),
			Personas:        models.PersonaTags{"Tinkerer"},
			Specs:           datatypes.JSONMap{"upgradeable": true},
			PriceHistory:    history(1049, 1049),
		},
		{
			Title:           "Dell XPS 15 (refurb)",
			Category:        "Laptops",
			Brand:           "Dell",
			Condition:       "refurbished",
			Marketplace:     "ebay",
			CurrentPrice:    999,
			OriginalPrice:   1899,
			DiscountPercent: 47,
			DealScore:       score(79),
			Personas:        models.PersonaTags{"Creative Professional", "Power User"},
			Specs:           datatypes.JSONMap{"display": "3.5K OLED"},
			PriceHistory:    history(1299, 1149, 999),
		},
		{
			Title:           "Pixel 9 Pro",
			Category:        "Phones",
			Brand:           "Google",
			Condition:       "new",
			Marketplace:     "bestbuy",
			CurrentPrice:    749,
			OriginalPrice:   999,
			DiscountPercent: 25,
			DealScore:       score(90),
			IsHot:           true,
			Personas:        models.PersonaTags{"Digital Nomad", "Versatile Student"},
			Specs:           datatypes.JSONMap{"storage_gb": 256},
			PriceHistory:    history(999, 899, 799, 749),
		},
		{
			Title:           "Sony WH-1000XM5",
			Category:        "Audio",
			Brand:           "Sony",
			Condition:       "new",
			Marketplace:     "amazon",
			CurrentPrice:    279,
			OriginalPrice:   399,
			DiscountPercent: 30,
			DealScore:       score(86),
			Personas:        models.PersonaTags{"Business Traveler", "Digital Nomad"},
			Specs:           datatypes.JSONMap{"anc": true},
			PriceHistory:    history(399, 329, 299, 279),
		},
		{
			Title:           "LG UltraGear 27 OLED",
			Category:        "Monitors",
			Brand:           "LG",
			Condition:       "open-box",
			Marketplace:     "ebay",
			CurrentPrice:    549,
			OriginalPrice:   899,
			DiscountPercent: 39,
			DealScore:       score(81),
			Personas:        models.PersonaTags{"Competitive Gamer", "Power User"},
			Specs:           datatypes.JSONMap{"refresh_hz": 240},
			PriceHistory:    history(899, 699, 599, 549),
		},
	}
}
