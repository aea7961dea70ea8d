package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follower is a user/realtor join pair.
type Follower struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_follower_pair;not null"`
	RealtorID   string    `json:"realtor_id" gorm:"uniqueIndex:idx_follower_pair;not null"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime"`
}

func (f *Follower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
