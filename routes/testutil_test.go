package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/storage"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB points the package's storage at a fresh in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	storage.DB = db
	return db
}

func setTestConf(t *testing.T, conf *utils.Config) {
	t.Helper()
	prev := utils.Conf
	utils.Conf = conf
	t.Cleanup(func() { utils.Conf = prev })
}

// stubIdentity stands in for the bearer-token middleware in tests.
func stubIdentity(identity *utils.Identity) iris.Handler {
	return func(ctx iris.Context) {
		utils.SetIdentity(ctx, identity)
		ctx.Next()
	}
}

func newTestApp(t *testing.T, register func(app *iris.Application)) *iris.Application {
	t.Helper()
	app := iris.New()
	app.Validator = validator.New()
	register(app)
	if err := app.Build(); err != nil {
		t.Fatalf("building app: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *iris.Application, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", resp.Body.String(), err)
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

func seedRealtor(t *testing.T, db *gorm.DB, uid, name string) *models.Realtor {
	t.Helper()
	realtor := &models.Realtor{
		RealtorID:   uid,
		CompanyName: name,
		CompanyMail: strings.ToLower(name) + "@example.com",
		Contact:     "+100000000",
	}
	if err := db.Create(realtor).Error; err != nil {
		t.Fatalf("seeding realtor: %v", err)
	}
	return realtor
}

func seedProperty(t *testing.T, db *gorm.DB, ownerID string, mutate func(*models.Property)) *models.Property {
	t.Helper()
	property := &models.Property{
		OwnerID:      ownerID,
		Location:     "Nairobi",
		Description:  "Spacious family home",
		Address:      "12 Riverside Drive",
		Bedrooms:     3,
		Bathrooms:    2,
		Category:     "residential",
		Price:        250000,
		PropertyType: "House",
		Size:         "1200",
	}
	property.SetImages([]string{})
	if mutate != nil {
		mutate(property)
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("seeding property: %v", err)
	}
	return property
}
