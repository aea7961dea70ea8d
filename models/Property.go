package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	OwnerID      string         `json:"owner_id" gorm:"index;not null"`
	Location     string         `json:"location" gorm:"index"`
	Description  string         `json:"description" gorm:"type:text"`
	Address      string         `json:"address"`
	Bedrooms     int            `json:"bedrooms"`
	Bathrooms    int            `json:"bathrooms"`
	Category     string         `json:"category"`
	Price        float64        `json:"price"`
	PropertyType string         `json:"property_type"`
	Size         string         `json:"size"`
	Active       *bool          `json:"active" gorm:"default:true"`
	DateCreated  time.Time      `json:"date_created" gorm:"autoCreateTime;index"`
	Images       datatypes.JSON `json:"-" gorm:"column:property_images"`

	Owner     Realtor    `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
	Purchases []Purchase `json:"-" gorm:"foreignKey:PropertyID"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// SetImages stores the ordered URL list. Order is display order and survives
// the round trip through the JSON column.
func (p *Property) SetImages(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	b, _ := json.Marshal(urls)
	p.Images = datatypes.JSON(b)
}

func (p *Property) GetImages() []string {
	var urls []string
	if len(p.Images) > 0 {
		if err := json.Unmarshal(p.Images, &urls); err != nil {
			return []string{}
		}
	}
	if urls == nil {
		urls = []string{}
	}
	return urls
}

func (p *Property) IsActive() bool {
	return p.Active == nil || *p.Active
}

// MarshalJSON exposes the stored JSON column as a plain string array.
func (p *Property) MarshalJSON() ([]byte, error) {
	type Alias Property
	return json.Marshal(&struct {
		*Alias
		PropertyImages []string `json:"property_images"`
		Active         bool     `json:"active"`
	}{
		Alias:          (*Alias)(p),
		PropertyImages: p.GetImages(),
		Active:         p.IsActive(),
	})
}
