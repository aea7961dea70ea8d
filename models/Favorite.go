package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a user/property join pair. UserID is the Firebase UID of the
// browsing user, which may not have any actor profile.
type Favorite struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_favorite_pair;not null"`
	PropertyID  string    `json:"property_id" gorm:"uniqueIndex:idx_favorite_pair;not null"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime"`

	Property Property `json:"property" gorm:"foreignKey:PropertyID;references:ID"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
