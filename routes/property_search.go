package routes

import (
	"strconv"
	"strings"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// numericFilter parses a filter parameter honoring the sentinel convention:
// empty, the literal "0", and anything non-numeric all mean "no filter".
func numericFilter(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// applySearchFilters composes the filter set onto a property query. All
// filters AND together; the free-text term ORs across four fields. A blank
// term matches everything. Bedrooms and bathrooms are upper bounds; max_area
// is a lower bound on size.
func applySearchFilters(q *gorm.DB, params func(string) string) *gorm.DB {
	if term := strings.TrimSpace(params("search_term")); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"LOWER(location) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ?",
			like, like, like, like)
	}

	if category := params("category"); category != "" {
		q = q.Where("category = ?", strings.ToLower(category))
	}
	if propertyType := params("property_type"); propertyType != "" {
		q = q.Where("property_type = ?", propertyType)
	}
	if minPrice, ok := numericFilter(params("min_price")); ok {
		q = q.Where("price >= ?", minPrice)
	}
	if maxPrice, ok := numericFilter(params("max_price")); ok {
		q = q.Where("price <= ?", maxPrice)
	}
	if bathrooms, ok := numericFilter(params("bathrooms")); ok {
		q = q.Where("bathrooms <= ?", bathrooms)
	}
	if bedrooms, ok := numericFilter(params("bedrooms")); ok {
		q = q.Where("bedrooms <= ?", bedrooms)
	}
	if maxArea, ok := numericFilter(params("max_area")); ok {
		q = q.Where("CAST(NULLIF(size, '') AS INTEGER) >= ?", maxArea)
	}

	return q
}

// SearchProperties runs the public property search with combinable filters.
func SearchProperties(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}

	q := storage.DB.Model(&models.Property{}).Where("active = ?", true)
	q = applySearchFilters(q, func(key string) string { return ctx.URLParam(key) })

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
		"results": items,
		"pages":   pageCount(total, propertyPageSize),
	})
}
