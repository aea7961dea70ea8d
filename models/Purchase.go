package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase is a buyer inquiry against a property. Status stays at its default
// "pending"; no endpoint transitions it to approved/rejected.
type Purchase struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	PropertyID  string    `json:"property_id" gorm:"index;not null"`
	BuyerID     string    `json:"buyer_id" gorm:"index"`
	BuyerName   string    `json:"buyer_name"`
	BuyerEmail  string    `json:"buyer_email"`
	BuyerPhone  string    `json:"buyer_phone"`
	Message     string    `json:"message" gorm:"type:text"`
	Status      string    `json:"status" gorm:"default:'pending'"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime"`

	Property Property `json:"-" gorm:"foreignKey:PropertyID;references:ID"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
