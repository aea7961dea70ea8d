package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor is a service provider profile bound to a Firebase UID. Vendors are
// auto-verified on registration; there is no manual verification workflow.
type Vendor struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	VendorID    string    `json:"vendor_id" gorm:"uniqueIndex;not null"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"index"`
	Services    string    `json:"services" gorm:"type:text"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	WebsiteURL  string    `json:"website_url"`
	Location    string    `json:"location"`
	LogoURL     string    `json:"logo_url"`
	Verified    bool      `json:"verified" gorm:"default:false"`
	Active      *bool     `json:"active" gorm:"default:true"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime"`
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func (v *Vendor) IsActive() bool {
	return v.Active == nil || *v.Active
}
