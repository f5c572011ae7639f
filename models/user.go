package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash  string    `json:"-" gorm:"column:password_hash;type:varchar(255);not null"`
	Status        string    `json:"status" gorm:"type:varchar(50);default:'active';index"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:false"`
	Avatar        *string   `json:"avatar,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"email_verified"`
	Avatar        *string   `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		EmailVerified: u.EmailVerified,
		Avatar:        u.Avatar,
		CreatedAt:     u.CreatedAt,
	}
}

// ═══════════════════════════════════════════════════════════
// User-owned state (preferences / watchlist / progress)
// ═══════════════════════════════════════════════════════════

// UserPreferences is the saved questionnaire outcome plus the user's last
// filter setup. Persisted as a JSON blob behind storage.Store, keyed by user.
type UserPreferences struct {
	Persona     *Persona              `json:"persona,omitempty"`
	Answers     *QuestionnaireAnswers `json:"answers,omitempty"`
	FilterState *FilterState          `json:"filter_state,omitempty"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// Watchlist is the ordered set of deal IDs a user tracks.
type Watchlist struct {
	DealIDs   []uuid.UUID `json:"deal_ids"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Contains reports whether the watchlist already tracks the deal.
func (w Watchlist) Contains(id uuid.UUID) bool {
	for _, d := range w.DealIDs {
		if d == id {
			return true
		}
	}
	return false
}

// UserProgress is the gamification state: accumulated XP and derived level.
type UserProgress struct {
	XP        int       `json:"xp"`
	Level     int       `json:"level"`
	UpdatedAt time.Time `json:"updated_at"`
}
