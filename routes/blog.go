package routes

import (
	"log"
	"time"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

const (
	blogPublicPageSize = 10
	blogAdminPageSize  = 20
)

// GetAllBlogs lists published, active articles, newest-published first.
func GetAllBlogs(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}

	q := storage.DB.Model(&models.Blog{}).Where("published = ? AND active = ?", true, true)
	if category := ctx.URLParam("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	q.Count(&total)

	var blogs []models.Blog
	if err := q.Order("date_published DESC").
		Offset((page - 1) * blogPublicPageSize).Limit(blogPublicPageSize).
		Find(&blogs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	items := make([]*models.Blog, 0, len(blogs))
	for i := range blogs {
		items = append(items, &blogs[i])
	}

	ctx.JSON(iris.Map{
		"blogs":        items,
		"pages":        pageCount(total, blogPublicPageSize),
		"current_page": page,
	})
}

// GetBlog returns one article and counts the read. Views only ever grow.
func GetBlog(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var blog models.Blog
	if storage.DB.Find(&blog, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Blog not found", ctx)
		return
	}

	// Update writes the incremented value back into blog.Views.
	if err := storage.DB.Model(&blog).Update("views", blog.Views+1).Error; err != nil {
		log.Printf("[BLOG] view counter update failed: %v", err)
	}

	ctx.JSON(&blog)
}

type BlogInput struct {
	Title            string   `json:"title" validate:"required"`
	Content          string   `json:"content" validate:"required"`
	Excerpt          string   `json:"excerpt"`
	Author           string   `json:"author"`
	FeaturedImageURL string   `json:"featured_image_url"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Published        bool     `json:"published"`
}

// AdminCreateBlog creates an article; the author defaults to the admin's
// token name and publishing stamps the publication time.
func AdminCreateBlog(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)

	var input BlogInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	author := input.Author
	if author == "" && identity != nil {
		author = identity.Name
		if author == "" {
			author = identity.Email
		}
	}

	blog := models.Blog{
		Title:            input.Title,
		Content:          input.Content,
		Excerpt:          input.Excerpt,
		Author:           author,
		FeaturedImageURL: input.FeaturedImageURL,
		Category:         input.Category,
		Published:        input.Published,
	}
	if identity != nil {
		blog.AuthorEmail = identity.Email
	}
	blog.SetTags(input.Tags)
	if blog.Published {
		now := time.Now().UTC()
		blog.DatePublished = &now
	}

	if err := storage.DB.Create(&blog).Error; err != nil {
		log.Printf("[ADMIN] blog create failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	logAdminAction(ctx, "created blog "+blog.ID)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Blog created successfully", "blog": &blog})
}

type BlogUpdateInput struct {
	Title            *string   `json:"title"`
	Content          *string   `json:"content"`
	Excerpt          *string   `json:"excerpt"`
	Author           *string   `json:"author"`
	FeaturedImageURL *string   `json:"featured_image_url"`
	Category         *string   `json:"category"`
	Tags             *[]string `json:"tags"`
	Published        *bool     `json:"published"`
}

// AdminUpdateBlog applies a partial update; a false-to-true publish
// transition stamps DatePublished.
func AdminUpdateBlog(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var blog models.Blog
	if storage.DB.Find(&blog, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Blog not found", ctx)
		return
	}

	var input BlogUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.Excerpt != nil {
		blog.Excerpt = *input.Excerpt
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.FeaturedImageURL != nil {
		blog.FeaturedImageURL = *input.FeaturedImageURL
	}
	if input.Category != nil {
		blog.Category = *input.Category
	}
	if input.Tags != nil {
		blog.SetTags(*input.Tags)
	}
	if input.Published != nil {
		wasPublished := blog.Published
		blog.Published = *input.Published
		if blog.Published && !wasPublished {
			now := time.Now().UTC()
			blog.DatePublished = &now
		}
	}

	if err := storage.DB.Save(&blog).Error; err != nil {
		log.Printf("[ADMIN] blog update failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	logAdminAction(ctx, "updated blog "+id)
	ctx.JSON(iris.Map{"message": "Blog updated successfully", "blog": &blog})
}

func AdminDeleteBlog(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var blog models.Blog
	if storage.DB.Find(&blog, "id = ?", id).RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Blog not found", ctx)
		return
	}

	if err := storage.DB.Delete(&models.Blog{}, "id = ?", id).Error; err != nil {
		log.Printf("[ADMIN] blog delete failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	logAdminAction(ctx, "deleted blog "+id)
	ctx.JSON(iris.Map{"message": "Blog deleted successfully"})
}

// AdminListBlogs lists active articles for moderation, drafts included on
// request, newest-created first.
func AdminListBlogs(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	includeUnpublished := ctx.URLParamDefault("include_unpublished", "false") == "true"

	q := storage.DB.Model(&models.Blog{}).Where("active = ?", true)
	if !includeUnpublished {
		q = q.Where("published = ?", true)
	}

	var total int64
	q.Count(&total)

	var blogs []models.Blog
	if err := q.Order("date_created DESC").
		Offset((page - 1) * blogAdminPageSize).Limit(blogAdminPageSize).
		Find(&blogs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	items := make([]*models.Blog, 0, len(blogs))
	for i := range blogs {
		items = append(items, &blogs[i])
	}

	ctx.JSON(iris.Map{
		"blogs":        items,
		"pages":        pageCount(total, blogAdminPageSize),
		"current_page": page,
	})
}
