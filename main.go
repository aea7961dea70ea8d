package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Lawhacknifemi/real-estate/routes"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	conf := utils.LoadConfig()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// Locally stored uploads
	if conf.UseLocalStorage {
		os.MkdirAll(conf.UploadDir, 0o755)
		app.HandleDir("/uploads/properties", iris.Dir(conf.UploadDir))
	}

	property := app.Party("/property")
	{
		property.Get("/all_properties", routes.GetAllProperties)
		property.Get("/search_properties", routes.SearchProperties)
		property.Get("/recently_added", routes.RecentlyAdded)
		property.Get("/my_properties", utils.Authenticate, routes.GetMyProperties)
		property.Post("/new_property/{realtorHint}", utils.Authenticate, routes.CreateProperty)
		property.Patch("/update_property/{realtorId}/{id}", utils.Authenticate, routes.UpdateProperty)
		property.Patch("/update_property_availability/{realtorId}/{id}", utils.Authenticate, routes.UpdatePropertyAvailability)
		property.Patch("/delist/{id}", utils.Authenticate, routes.DelistProperty)
		property.Patch("/relist/{id}", utils.Authenticate, routes.RelistProperty)
		property.Delete("/delete/{id}", utils.Authenticate, routes.DeleteProperty)
		property.Post("/purchase/{id}", utils.Authenticate, routes.PurchaseProperty)

		admin := property.Party("/admin", utils.Authenticate, utils.RequireAdmin)
		{
			admin.Get("/all", routes.AdminListProperties)
			admin.Delete("/delete/{id}", routes.AdminDeleteProperty)
			admin.Patch("/deactivate/{id}", routes.AdminDeactivateProperty)
			admin.Patch("/activate/{id}", routes.AdminActivateProperty)
		}

		property.Get("/{id}", routes.GetProperty)
	}

	vendors := app.Party("/vendors")
	{
		vendors.Get("/", routes.GetAllVendors)
		vendors.Get("/category/{category}", routes.GetVendorsByCategory)
		vendors.Post("/register", utils.Authenticate, routes.RegisterVendor)

		admin := vendors.Party("/admin", utils.Authenticate, utils.RequireAdmin)
		{
			admin.Get("/all", routes.AdminListVendors)
			admin.Delete("/delete/{id}", routes.AdminDeleteVendor)
			admin.Patch("/deactivate/{id}", routes.AdminDeactivateVendor)
			admin.Patch("/activate/{id}", routes.AdminActivateVendor)
		}

		vendors.Get("/{id}", routes.GetVendor)
		vendors.Patch("/{id}", utils.Authenticate, routes.UpdateVendor)
	}

	blogs := app.Party("/blogs")
	{
		blogs.Get("/", routes.GetAllBlogs)

		admin := blogs.Party("/admin", utils.Authenticate, utils.RequireAdmin)
		{
			admin.Get("/all", routes.AdminListBlogs)
			admin.Post("/create", routes.AdminCreateBlog)
			admin.Patch("/update/{id}", routes.AdminUpdateBlog)
			admin.Delete("/delete/{id}", routes.AdminDeleteBlog)
		}

		blogs.Get("/{id}", routes.GetBlog)
	}

	favorites := app.Party("/favorites", utils.Authenticate)
	{
		favorites.Get("/", routes.ListFavorites)
		favorites.Post("/{propertyId}", routes.AddFavorite)
		favorites.Delete("/{propertyId}", routes.RemoveFavorite)
	}

	followers := app.Party("/followers")
	{
		followers.Get("/realtor/{realtorId}", routes.GetRealtorFollowers)
		followers.Post("/{realtorId}", utils.Authenticate, routes.FollowRealtor)
		followers.Delete("/{realtorId}", utils.Authenticate, routes.UnfollowRealtor)
	}

	realtors := app.Party("/realtors")
	{
		realtors.Get("/me", utils.Authenticate, routes.GetMyRealtorProfile)
		realtors.Patch("/me", utils.Authenticate, routes.UpdateMyRealtorProfile)
		realtors.Get("/{id}", routes.GetRealtor)
	}

	utilsParty := app.Party("/utils")
	{
		utilsParty.Post("/send_mail", routes.SendMail)
		utilsParty.Post("/upload_images", utils.Authenticate, routes.UploadImages)
	}

	app.Get("/admin/check", utils.Authenticate, routes.CheckAdmin)

	addr := ":" + conf.Port
	fmt.Println("Starting server on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
