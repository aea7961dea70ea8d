package routes

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

// ListFavorites returns the caller's saved properties.
func ListFavorites(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	var favorites []models.Favorite
	if err := storage.DB.Preload("Property").
		Where("user_id = ?", identity.UID).
		Order("date_created DESC").Find(&favorites).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"favorites": favorites})
}

// AddFavorite saves a property for the caller. The (user, property) pair is
// unique; a repeat save is a conflict.
func AddFavorite(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	propertyID := ctx.Params().Get("propertyId")
	var property models.Property
	if storage.DB.Find(&property, "id = ?", propertyID).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	var existing models.Favorite
	if storage.DB.Where("user_id = ? AND property_id = ?", identity.UID, propertyID).
		First(&existing).Error == nil {
		ctx.StopWithJSON(iris.StatusConflict, iris.Map{"message": "Property already favorited"})
		return
	}

	favorite := models.Favorite{UserID: identity.UID, PropertyID: propertyID}
	if err := storage.DB.Create(&favorite).Error; err != nil {
		log.Printf("[FAVORITE] create failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Property favorited", "favorite_id": favorite.ID})
}

// RemoveFavorite unsaves a property.
func RemoveFavorite(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	propertyID := ctx.Params().Get("propertyId")
	result := storage.DB.Where("user_id = ? AND property_id = ?", identity.UID, propertyID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Favorite not found", ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Favorite removed"})
}
