package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Realtor is the selling actor behind property listings. RealtorID is the
// stable Firebase UID; ID is the internal row key that properties reference.
type Realtor struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	RealtorID      string    `json:"realtor_id" gorm:"uniqueIndex;not null"`
	CompanyName    string    `json:"company_name"`
	Description    string    `json:"description" gorm:"type:text"`
	ProfilePicture string    `json:"profile_picture"`
	CompanyMail    string    `json:"company_mail"`
	WebsiteURL     string    `json:"website_url"`
	Contact        string    `json:"contact"`
	DateCreated    time.Time `json:"date_created" gorm:"autoCreateTime"`

	Properties []Property `json:"-" gorm:"foreignKey:OwnerID"`
}

func (r *Realtor) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ContactBlock is the denormalized owner info embedded in property responses.
func (r *Realtor) ContactBlock() map[string]interface{} {
	return map[string]interface{}{
		"contact_name":  r.CompanyName,
		"contact_email": r.CompanyMail,
		"contact_phone": r.Contact,
		"realtor_id":    r.RealtorID,
	}
}
