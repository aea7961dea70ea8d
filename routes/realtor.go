package routes

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/services"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

// GetRealtor returns a public realtor profile.
func GetRealtor(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var realtor models.Realtor
	if storage.DB.Find(&realtor, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Realtor not found", ctx)
		return
	}

	ctx.JSON(&realtor)
}

// GetMyRealtorProfile resolves (creating on first call) the caller's profile.
func GetMyRealtorProfile(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	realtor, err := services.ResolveRealtor(storage.DB, identity, services.RealtorHints{})
	if err != nil {
		log.Printf("[REALTOR] resolve failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(realtor)
}

type RealtorUpdateInput struct {
	CompanyName    *string `json:"company_name"`
	Description    *string `json:"description"`
	ProfilePicture *string `json:"profile_picture"`
	CompanyMail    *string `json:"company_mail"`
	WebsiteURL     *string `json:"website_url"`
	Contact        *string `json:"contact"`
}

// UpdateMyRealtorProfile patches the caller's own profile fields.
func UpdateMyRealtorProfile(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	realtor, err := services.LookupRealtor(storage.DB, identity.UID)
	if err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Realtor profile not found", ctx)
		return
	}

	var input RealtorUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.CompanyName != nil {
		realtor.CompanyName = *input.CompanyName
	}
	if input.Description != nil {
		realtor.Description = *input.Description
	}
	if input.ProfilePicture != nil {
		realtor.ProfilePicture = *input.ProfilePicture
	}
	if input.CompanyMail != nil {
		realtor.CompanyMail = *input.CompanyMail
	}
	if input.WebsiteURL != nil {
		realtor.WebsiteURL = *input.WebsiteURL
	}
	if input.Contact != nil {
		realtor.Contact = *input.Contact
	}

	if err := storage.DB.Save(realtor).Error; err != nil {
		log.Printf("[REALTOR] update failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(realtor)
}
