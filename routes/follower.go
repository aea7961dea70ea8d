package routes

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

// GetRealtorFollowers returns the follower count for a realtor.
func GetRealtorFollowers(ctx iris.Context) {
	realtorID := ctx.Params().Get("realtorId")

	var realtor models.Realtor
	if storage.DB.Find(&realtor, "id = ?", realtorID).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Realtor not found", ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.Follower{}).Where("realtor_id = ?", realtorID).Count(&count)

	ctx.JSON(iris.Map{"realtor_id": realtorID, "followers": count})
}

// FollowRealtor records a (user, realtor) pair. Following twice conflicts.
func FollowRealtor(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	realtorID := ctx.Params().Get("realtorId")
	var realtor models.Realtor
	if storage.DB.Find(&realtor, "id = ?", realtorID).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Realtor not found", ctx)
		return
	}

	var existing models.Follower
	if storage.DB.Where("user_id = ? AND realtor_id = ?", identity.UID, realtorID).
		First(&existing).Error == nil {
		ctx.StopWithJSON(iris.StatusConflict, iris.Map{"message": "Already following this realtor"})
		return
	}

	follower := models.Follower{UserID: identity.UID, RealtorID: realtorID}
	if err := storage.DB.Create(&follower).Error; err != nil {
		log.Printf("[FOLLOWER] create failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Now following realtor"})
}

// UnfollowRealtor removes the pair.
func UnfollowRealtor(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	realtorID := ctx.Params().Get("realtorId")
	result := storage.DB.Where("user_id = ? AND realtor_id = ?", identity.UID, realtorID).
		Delete(&models.Follower{})
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Not following this realtor", ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Unfollowed realtor"})
}
