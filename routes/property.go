package routes

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/services"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

const (
	propertyPageSize   = 20
	recentlyAddedLimit = 4
	recentlyAddedKey   = "recently_added_properties"
	recentlyAddedTTL   = 60 * time.Second
)

type PropertyInput struct {
	Location       string   `json:"location" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Address        string   `json:"address" validate:"required"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	Category       string   `json:"category" validate:"required"`
	Price          float64  `json:"price" validate:"required"`
	PropertyType   string   `json:"property_type" validate:"required"`
	Size           string   `json:"size"`
	PropertyImages []string `json:"property_images"`

	// Realtor profile hints, applied by the ownership resolver
	ContactName    string `json:"contact_name"`
	CompanyName    string `json:"company_name"`
	ContactEmail   string `json:"contact_email"`
	Contact        string `json:"contact"`
	ProfilePicture string `json:"profile_picture"`
	WebsiteURL     string `json:"website_url"`
}

func (in *PropertyInput) realtorHints() services.RealtorHints {
	name := in.ContactName
	if name == "" {
		name = in.CompanyName
	}
	return services.RealtorHints{
		CompanyName:    name,
		Description:    in.Description,
		ProfilePicture: in.ProfilePicture,
		CompanyMail:    in.ContactEmail,
		WebsiteURL:     in.WebsiteURL,
		Contact:        in.Contact,
	}
}

// serializeProperty renders a property through its transport representation so
// handlers can attach the denormalized realtor block.
func serializeProperty(p *models.Property) iris.Map {
	b, _ := json.Marshal(p)
	var m iris.Map
	_ = json.Unmarshal(b, &m)
	return m
}

func pageCount(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// GetAllProperties lists active properties, newest first, 20 per page.
func GetAllProperties(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}

	q := storage.DB.Model(&models.Property{}).Where("active = ?", true)

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
		items = append(items, serializeProperty(&properties[i]))
	}

	ctx.JSON(iris.Map{
		"properties": items,
		"pages":      pageCount(total, propertyPageSize),
	})
}

// GetProperty returns one property with the owner contact block.
func GetProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "property of id "+id+" not found", ctx)
		return
	}

	payload := serializeProperty(&property)

	var realtor models.Realtor
	if storage.DB.Find(&realtor, "id = ?", property.OwnerID).RowsAffected > 0 {
		payload["realtor"] = realtor.ContactBlock()
	}

	ctx.JSON(payload)
}

// CreateProperty creates a listing, provisioning the caller's realtor profile
// on first write. The path hint is routing sugar; owner_id always comes from
// the resolved actor's internal id.
func CreateProperty(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	var input PropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	realtor, err := services.ResolveRealtor(storage.DB, identity, input.realtorHints())
	if err != nil {
		log.Printf("[PROPERTY] resolving realtor failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	property := models.Property{
		OwnerID:      realtor.ID,
		Location:     input.Location,
		Description:  input.Description,
		Address:      input.Address,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		Category:     input.Category,
		Price:        input.Price,
		PropertyType: input.PropertyType,
		Size:         input.Size,
	}
	property.SetImages(input.PropertyImages)

	if err := storage.DB.Create(&property).Error; err != nil {
		log.Printf("[PROPERTY] create failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.CacheDel(recentlyAddedKey)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":      "Property " + property.ID + " created successfully",
		"property_id":  property.ID,
		"images_saved": len(property.GetImages()),
	})
}

// UpdateProperty replaces the listed fields. The caller must be the owning
// actor; the path realtor id must also match the stored owner.
func UpdateProperty(ctx iris.Context) {
	realtorID := ctx.Params().Get("realtorId")
	id := ctx.Params().Get("id")

	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if property.OwnerID != realtorID {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"message": "Not the owner of property"})
		return
	}
	if !callerOwnsProperty(ctx, &property) {
		return
	}

	var input PropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property.Location = input.Location
	property.Description = input.Description
	property.Address = input.Address
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.Category = input.Category
	property.Price = input.Price
	property.PropertyType = input.PropertyType
	if input.Size != "" {
		property.Size = input.Size
	}
	property.SetImages(input.PropertyImages)

	if err := storage.DB.Save(&property).Error; err != nil {
		log.Printf("[PROPERTY] update failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.CacheDel(recentlyAddedKey)
	ctx.JSON(serializeProperty(&property))
}

// UpdatePropertyAvailability toggles the active flag with an explicit action.
func UpdatePropertyAvailability(ctx iris.Context) {
	realtorID := ctx.Params().Get("realtorId")
	id := ctx.Params().Get("id")

	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if property.OwnerID != realtorID {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"message": "Not owner"})
		return
	}
	if !callerOwnsProperty(ctx, &property) {
		return
	}

	var input struct {
		Action string `json:"action" validate:"required"`
	}
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	switch input.Action {
	case "activate":
		setPropertyActive(ctx, &property, true, "Activated property!")
	case "deactivate":
		setPropertyActive(ctx, &property, false, "Deactivated property!")
	default:
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Unknown action", ctx)
	}
}

// callerOwnsProperty enforces that the resolved actor of the authenticated
// caller owns the property, whatever the path parameters claim.
func callerOwnsProperty(ctx iris.Context, property *models.Property) bool {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return false
	}

	realtor, err := services.LookupRealtor(storage.DB, identity.UID)
	if err != nil {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"message": "You don't have permission to modify this property"})
		return false
	}
	if realtor.ID != property.OwnerID {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"message": "You don't have permission to modify this property"})
		return false
	}
	return true
}

func setPropertyActive(ctx iris.Context, property *models.Property, active bool, message string) {
	if err := storage.DB.Model(property).Update("active", active).Error; err != nil {
		log.Printf("[PROPERTY] availability update failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	storage.CacheDel(recentlyAddedKey)
	ctx.JSON(iris.Map{"message": message})
}

// DelistProperty sets active=false for a listing owned by the caller's actor.
func DelistProperty(ctx iris.Context) {
	ownerFlagToggle(ctx, false, "Property delisted successfully")
}

// RelistProperty sets active=true.
func RelistProperty(ctx iris.Context) {
	ownerFlagToggle(ctx, true, "Property relisted successfully")
}

func ownerFlagToggle(ctx iris.Context, active bool, message string) {
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

	id := ctx.Params().Get("id")
	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if property.OwnerID != realtor.ID {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"message": "You don't have permission to modify this property"})
		return
	}

	setPropertyActive(ctx, &property, active, message)
}

// DeleteProperty permanently removes a listing owned by the caller's actor.
func DeleteProperty(ctx iris.Context) {
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

	id := ctx.Params().Get("id")
	var property models.Property
	if storage.DB.Find(&property, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	if property.OwnerID != realtor.ID {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"message": "You don't have permission to delete this property"})
		return
	}

	if err := storage.DB.Delete(&models.Property{}, "id = ?", id).Error; err != nil {
		log.Printf("[PROPERTY] delete failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.CacheDel(recentlyAddedKey)
	ctx.JSON(iris.Map{"message": "Property deleted successfully"})
}

// GetMyProperties lists the caller's own listings, inactive ones included on
// request.
func GetMyProperties(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User ID not found in token"})
		return
	}

	realtor, err := services.LookupRealtor(storage.DB, identity.UID)
	if err != nil {
		ctx.JSON(iris.Map{"properties": []iris.Map{}, "pages": 0})
		return
	}

	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	includeInactive := ctx.URLParamDefault("include_inactive", "false") == "true"

	q := storage.DB.Model(&models.Property{}).Where("owner_id = ?", realtor.ID)
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
		items = append(items, serializeProperty(&properties[i]))
	}

	ctx.JSON(iris.Map{
		"properties": items,
		"pages":      pageCount(total, propertyPageSize),
	})
}

// RecentlyAdded returns the four newest listings, unpaginated. The strip is
// cached in Redis for a minute and silently recomputed when the cache is down.
func RecentlyAdded(ctx iris.Context) {
	if cached := storage.CacheGet(recentlyAddedKey); cached != "" {
		ctx.ContentType("application/json")
		ctx.WriteString(cached)
		return
	}

	var properties []models.Property
	if err := storage.DB.Where("active = ?", true).
		Order("date_created DESC, id").Limit(recentlyAddedLimit).
		Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	items := make([]iris.Map, 0, len(properties))
	for i := range properties {
		items = append(items, serializeProperty(&properties[i]))
	}

	if body, err := json.Marshal(items); err == nil {
		storage.CacheSet(recentlyAddedKey, string(body), recentlyAddedTTL)
	}
	ctx.JSON(items)
}
