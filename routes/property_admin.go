package routes

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

// Admin mirrors of the property moderation operations. All run behind
// Authenticate + RequireAdmin.

func AdminDeleteProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if err := storage.DB.Delete(&models.Property{}, "id = ?", id).Error; err != nil {
		log.Printf("[ADMIN] property delete failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.CacheDel(recentlyAddedKey)
	logAdminAction(ctx, "deleted property "+id)
	ctx.JSON(iris.Map{"message": "Property deleted successfully"})
}

func AdminDeactivateProperty(ctx iris.Context) {
	adminSetPropertyActive(ctx, false, "Property deactivated successfully")
}

func AdminActivateProperty(ctx iris.Context) {
	adminSetPropertyActive(ctx, true, "Property activated successfully")
}

func adminSetPropertyActive(ctx iris.Context, active bool, message string) {
	id := ctx.Params().Get("id")

	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if err := storage.DB.Model(&property).Update("active", active).Error; err != nil {
		log.Printf("[ADMIN] property availability update failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.CacheDel(recentlyAddedKey)
	logAdminAction(ctx, message+" ("+id+")")
	ctx.JSON(iris.Map{"message": message})
}

// AdminListProperties lists every property, inactive ones on request, with
// the owner block embedded.
func AdminListProperties(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	includeInactive := ctx.URLParamDefault("include_inactive", "false") == "true"

	q := storage.DB.Model(&models.Property{})
	if !includeInactive {
		q = q.Where("active = ?", true)
	}

	var total int64
	q.Count(&total)

	var properties []models.Property
	if err := q.Order("date_created DESC, id").
		Offset((page - 1) * propertyPageSize).Limit(propertyPageSize).
		Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	items := make([]iris.Map, 0, len(properties))
	for i := range properties {
		item := serializeProperty(&properties[i])
		var realtor models.Realtor
		if storage.DB.Find(&realtor, "id = ?", properties[i].OwnerID).RowsAffected > 0 {
			item["realtor"] = iris.Map{
				"company_name":  realtor.CompanyName,
				"contact_email": realtor.CompanyMail,
				"contact_phone": realtor.Contact,
				"realtor_id":    realtor.RealtorID,
			}
		}
		items = append(items, item)
	}

	ctx.JSON(iris.Map{
		"properties": items,
		"pages":      pageCount(total, propertyPageSize),
	})
}

func logAdminAction(ctx iris.Context, action string) {
	email := ""
	if identity := utils.CurrentIdentity(ctx); identity != nil {
		email = identity.Email
	}
	log.Printf("[ADMIN] %s by %s", action, email)
}
