package routes

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

type PurchaseInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// PurchaseProperty records a buyer inquiry and notifies the owning realtor.
// The notification is best-effort: a mail failure never fails the write.
func PurchaseProperty(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	id := ctx.Params().Get("id")
	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	var input PurchaseInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var realtor models.Realtor
	if storage.DB.Find(&realtor, "id = ?", property.OwnerID).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property owner not found", ctx)
		return
	}
	if realtor.CompanyMail == "" {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property owner email not found", ctx)
		return
	}

	purchase := models.Purchase{
		PropertyID: property.ID,
		BuyerID:    identity.UID,
		BuyerName:  input.Name,
		BuyerEmail: input.Email,
		BuyerPhone: input.Phone,
		Message:    input.Message,
		Status:     "pending",
	}

	if err := storage.DB.Create(&purchase).Error; err != nil {
		log.Printf("[PURCHASE] create failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	title := property.Address
	if title == "" {
		title = property.Location
	}
	if err := utils.SendPurchaseMail(utils.PurchaseMailInput{
		BuyerName:    input.Name,
		BuyerEmail:   input.Email,
		BuyerPhone:   input.Phone,
		BuyerMessage: input.Message,
		RealtorEmail: realtor.CompanyMail,
		Title:        title,
		Price:        property.Price,
		Location:     property.Location,
	}); err != nil {
		log.Printf("[PURCHASE] failed to send email: %v", err)
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":     "Purchase request submitted successfully",
		"purchase_id": purchase.ID,
	})
}
