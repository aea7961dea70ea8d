package routes

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/services"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

type VendorInput struct {
	CompanyName string `json:"company_name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Services    string `json:"services"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	WebsiteURL  string `json:"website_url"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo_url"`
}

// GetAllVendors lists active vendors, optionally filtered by category.
func GetAllVendors(ctx iris.Context) {
	q := storage.DB.Where("active = ?", true)
	if category := ctx.URLParam("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var vendors []models.Vendor
	if err := q.Order("date_created DESC").Find(&vendors).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"vendors": vendors})
}

func GetVendor(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var vendor models.Vendor
	if storage.DB.Find(&vendor, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Vendor not found", ctx)
		return
	}

	ctx.JSON(&vendor)
}

// RegisterVendor creates a vendor profile for the caller's identity. Vendors
// are auto-verified; there is no review queue.
func RegisterVendor(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	if existing, err := services.LookupVendor(storage.DB, identity.UID); err == nil {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"message":   "Vendor profile already exists",
			"vendor_id": existing.ID,
		})
		return
	}

	var input VendorInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	email := input.Email
	if email == "" {
		email = identity.Email
	}

	vendor := models.Vendor{
		VendorID:    identity.UID,
		CompanyName: input.CompanyName,
		Description: input.Description,
		Category:    input.Category,
		Services:    input.Services,
		Email:       email,
		Phone:       input.Phone,
		WebsiteURL:  input.WebsiteURL,
		Location:    input.Location,
		LogoURL:     input.LogoURL,
		Verified:    true,
	}

	if err := storage.DB.Create(&vendor).Error; err != nil {
		log.Printf("[VENDOR] create failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":   "Vendor registered successfully",
		"vendor_id": vendor.ID,
	})
}

type VendorUpdateInput struct {
	CompanyName *string `json:"company_name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Services    *string `json:"services"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	WebsiteURL  *string `json:"website_url"`
	Location    *string `json:"location"`
	LogoURL     *string `json:"logo_url"`
}

// UpdateVendor applies a partial update to the caller's own vendor profile.
func UpdateVendor(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	id := ctx.Params().Get("id")
	var vendor models.Vendor
	if storage.DB.Find(&vendor, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Vendor not found", ctx)
		return
	}

	if vendor.VendorID != identity.UID {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{
			"message": "You don't have permission to update this vendor profile",
		})
		return
	}

	var input VendorUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.CompanyName != nil {
		vendor.CompanyName = *input.CompanyName
	}
	if input.Description != nil {
		vendor.Description = *input.Description
	}
	if input.Category != nil {
		vendor.Category = *input.Category
	}
	if input.Services != nil {
		vendor.Services = *input.Services
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.WebsiteURL != nil {
		vendor.WebsiteURL = *input.WebsiteURL
	}
	if input.Location != nil {
		vendor.Location = *input.Location
	}
	if input.LogoURL != nil {
		vendor.LogoURL = *input.LogoURL
	}

	if err := storage.DB.Save(&vendor).Error; err != nil {
		log.Printf("[VENDOR] update failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Vendor updated successfully",
		"vendor":  &vendor,
	})
}

// GetVendorsByCategory is the path-parameter variant of the category filter.
func GetVendorsByCategory(ctx iris.Context) {
	category := ctx.Params().Get("category")

	var vendors []models.Vendor
	if err := storage.DB.Where("category = ? AND active = ?", category, true).
		Order("date_created DESC").Find(&vendors).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"vendors": vendors, "category": category})
}

// Admin mirrors.

func AdminDeleteVendor(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var vendor models.Vendor
	if storage.DB.Find(&vendor, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Vendor not found", ctx)
		return
	}

	if err := storage.DB.Delete(&models.Vendor{}, "id = ?", id).Error; err != nil {
		log.Printf("[ADMIN] vendor delete failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	logAdminAction(ctx, "deleted vendor "+id)
	ctx.JSON(iris.Map{"message": "Vendor deleted successfully"})
}

func AdminDeactivateVendor(ctx iris.Context) {
	adminSetVendorActive(ctx, false, "Vendor deactivated successfully")
}

func AdminActivateVendor(ctx iris.Context) {
	adminSetVendorActive(ctx, true, "Vendor activated successfully")
}

func adminSetVendorActive(ctx iris.Context, active bool, message string) {
	id := ctx.Params().Get("id")

	var vendor models.Vendor
	if storage.DB.Find(&vendor, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Vendor not found", ctx)
		return
	}

	if err := storage.DB.Model(&vendor).Update("active", active).Error; err != nil {
		log.Printf("[ADMIN] vendor availability update failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	logAdminAction(ctx, message+" ("+id+")")
	ctx.JSON(iris.Map{"message": message})
}

func AdminListVendors(ctx iris.Context) {
	includeInactive := ctx.URLParamDefault("include_inactive", "false") == "true"

	q := storage.DB.Model(&models.Vendor{})
	if !includeInactive {
		q = q.Where("active = ?", true)
	}

	var vendors []models.Vendor
	if err := q.Order("date_created DESC").Find(&vendors).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"vendors": vendors})
}
