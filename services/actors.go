package services

import (
	"errors"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/utils"
	"gorm.io/gorm"
)

// RealtorHints are caller-supplied profile fields used when the actor record
// is materialized on first write. Blanks default to token-provided values.
type RealtorHints struct {
	CompanyName    string
	Description    string
	ProfilePicture string
	CompanyMail    string
	WebsiteURL     string
	Contact        string
}

// ResolveRealtor maps a verified identity to its realtor record, creating one
// on first write. The external key carries a unique index, so a concurrent
// create/create race resolves by re-reading the winner. When the record
// already exists, non-empty contact hints are applied last-write-wins.
func ResolveRealtor(db *gorm.DB, identity *utils.Identity, hints RealtorHints) (*models.Realtor, error) {
	var realtor models.Realtor
	err := db.Where("realtor_id = ?", identity.UID).First(&realtor).Error
	if err == nil {
		return applyRealtorHints(db, &realtor, hints)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := hints.CompanyName
	if name == "" {
		name = identity.Name
	}
	if name == "" {
		name = "Seller"
	}
	mail := hints.CompanyMail
	if mail == "" {
		mail = identity.Email
	}
	description := hints.Description
	if description == "" {
		description = "Property seller"
	}

	realtor = models.Realtor{
		RealtorID:      identity.UID,
		CompanyName:    name,
		Description:    description,
		ProfilePicture: hints.ProfilePicture,
		CompanyMail:    mail,
		WebsiteURL:     hints.WebsiteURL,
		Contact:        hints.Contact,
	}

	if createErr := db.Create(&realtor).Error; createErr != nil {
		// Unique-index conflict: another request provisioned the same
		// identity first. Re-read and return the winner.
		var existing models.Realtor
		if readErr := db.Where("realtor_id = ?", identity.UID).First(&existing).Error; readErr == nil {
			return &existing, nil
		}
		return nil, createErr
	}
	return &realtor, nil
}

func applyRealtorHints(db *gorm.DB, realtor *models.Realtor, hints RealtorHints) (*models.Realtor, error) {
	changed := false
	if hints.CompanyName != "" && hints.CompanyName != realtor.CompanyName {
		realtor.CompanyName = hints.CompanyName
		changed = true
	}
	if hints.CompanyMail != "" && hints.CompanyMail != realtor.CompanyMail {
		realtor.CompanyMail = hints.CompanyMail
		changed = true
	}
	if hints.Contact != "" && hints.Contact != realtor.Contact {
		realtor.Contact = hints.Contact
		changed = true
	}
	if changed {
		if err := db.Save(realtor).Error; err != nil {
			return nil, err
		}
	}
	return realtor, nil
}

// LookupRealtor finds the realtor for an external identity key without
// creating one. Returns gorm.ErrRecordNotFound when no profile exists.
func LookupRealtor(db *gorm.DB, uid string) (*models.Realtor, error) {
	var realtor models.Realtor
	if err := db.Where("realtor_id = ?", uid).First(&realtor).Error; err != nil {
		return nil, err
	}
	return &realtor, nil
}

// LookupVendor finds the vendor for an external identity key.
func LookupVendor(db *gorm.DB, uid string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := db.Where("vendor_id = ?", uid).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}
