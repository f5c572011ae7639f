package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// PricePoint is one sample in a deal's price history.
type PricePoint struct {
	Price      float64   `json:"price" binding:"required,min=0"`
	RecordedAt time.Time `json:"recorded_at" binding:"required"`
}

// Custom slice types so we can hang Value/Scan off them for jsonb columns.
type (
	PersonaTags      []string
	PriceHistoryList []PricePoint
)

func (t PersonaTags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *PersonaTags) Scan(value interface{}) error {
	return scanJSON(value, t)
}

func (h PriceHistoryList) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h)
}

func (h *PriceHistoryList) Scan(value interface{}) error {
	return scanJSON(value, h)
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return errors.New("unsupported jsonb source type")
	}
}

// ═══════════════════════════════════════════════════════════
// Main Deal Model (GORM)
// ═══════════════════════════════════════════════════════════

type Deal struct {
	ID              uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string            `json:"title" gorm:"not null;index"`
	Category        string            `json:"category" gorm:"not null;index"`
	Brand           string            `json:"brand" gorm:"index"`
	Condition       string            `json:"condition" gorm:"index"`
	Marketplace     string            `json:"marketplace" gorm:"index"`
	CurrentPrice    float64           `json:"current_price" gorm:"type:numeric(12,2);not null;check:current_price >= 0"`
	OriginalPrice   float64           `json:"original_price" gorm:"type:numeric(12,2);not null;check:original_price >= 0"`
	DiscountPercent float64           `json:"discount_percent" gorm:"type:numeric(5,2);not null;default:0"`
	DealScore       *float64          `json:"deal_score,omitempty" gorm:"type:numeric(5,2)"`
	IsHot           bool              `json:"is_hot" gorm:"default:false;index"`
	IsAllTimeLow    bool              `json:"is_all_time_low" gorm:"default:false"`
	Personas        PersonaTags       `json:"personas" gorm:"type:jsonb;not null;default:'[]'"`
	Specs           datatypes.JSONMap `json:"specs" gorm:"type:jsonb;not null;default:'{}'"`
	PriceHistory    PriceHistoryList  `json:"price_history" gorm:"type:jsonb;not null;default:'[]'"`
	URL             string            `json:"url"`
	Image           string            `json:"image"`
	Views           int               `json:"views" gorm:"default:0;index:idx_deals_views,sort:desc"`
	CreatedAt       time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Deal) TableName() string {
	return "deals"
}

// ComputeAllTimeLow reports whether the current price is at or below every
// recorded history point. A deal with no history is not an all-time low.
func (d *Deal) ComputeAllTimeLow() bool {
	if len(d.PriceHistory) == 0 {
		return false
	}
	for _, p := range d.PriceHistory {
		if d.CurrentPrice > p.Price {
			return false
		}
	}
	return true
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// DealCard is the thin list-view response (storefront cards).
type DealCard struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Brand           string    `json:"brand"`
	CurrentPrice    float64   `json:"current_price"`
	DiscountPercent float64   `json:"discount_percent"`
	DealScore       *float64  `json:"deal_score,omitempty"`
	IsHot           bool      `json:"is_hot"`
	IsAllTimeLow    bool      `json:"is_all_time_low"`
	Image           string    `json:"image"`
}

// ToCard converts a Deal to its list-view shape.
func (d *Deal) ToCard() DealCard {
	return DealCard{
		ID:              d.ID,
		Title:           d.Title,
		Category:        d.Category,
		Brand:           d.Brand,
		CurrentPrice:    d.CurrentPrice,
		DiscountPercent: d.DiscountPercent,
		DealScore:       d.DealScore,
		IsHot:           d.IsHot,
		IsAllTimeLow:    d.IsAllTimeLow,
		Image:           d.Image,
	}
}

// RecommendedDeal pairs a deal card with its persona match score.
type RecommendedDeal struct {
	Deal       DealCard `json:"deal"`
	MatchScore int      `json:"match_score"`
}
