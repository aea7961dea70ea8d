package routes

import (
	"net/http"
	"testing"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

func buildRealtorApp(t *testing.T, identity *utils.Identity) *iris.Application {
	return newTestApp(t, func(app *iris.Application) {
		auth := stubIdentity(identity)
		realtors := app.Party("/realtors")
		realtors.Get("/me", auth, GetMyRealtorProfile)
		realtors.Patch("/me", auth, UpdateMyRealtorProfile)
		realtors.Get("/{id}", GetRealtor)
	})
}

func TestGetMyRealtorProfileProvisions(t *testing.T) {
	db := newTestDB(t)
	setTestConf(t, &utils.Config{})

	identity := &utils.Identity{UID: "uid-me", Email: "me@example.com", Name: "Sam Seller"}
	app := buildRealtorApp(t, identity)

	resp := doJSON(t, app, http.MethodGet, "/realtors/me", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["realtor_id"] != "uid-me" {
		t.Errorf("realtor_id = %v, want token uid", body["realtor_id"])
	}
	if body["company_name"] != "Sam Seller" {
		t.Errorf("company_name = %v, want token name default", body["company_name"])
	}

	// A second call resolves the same row.
	resp = doJSON(t, app, http.MethodGet, "/realtors/me", "")
	if decodeBody(t, resp)["id"] != body["id"] {
		t.Error("repeated resolution should return the same profile")
	}
	var count int64
	db.Model(&models.Realtor{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one realtor row, got %d", count)
	}
}

func TestUpdateMyRealtorProfilePartial(t *testing.T) {
	db := newTestDB(t)
	setTestConf(t, &utils.Config{})

	realtor := seedRealtor(t, db, "uid-patch", "Original Name")
	app := buildRealtorApp(t, &utils.Identity{UID: "uid-patch"})

	resp := doJSON(t, app, http.MethodPatch, "/realtors/me",
		`{"website_url":"https://example.com","contact":"+254711"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var stored models.Realtor
	db.First(&stored, "id = ?", realtor.ID)
	if stored.WebsiteURL != "https://example.com" || stored.Contact != "+254711" {
		t.Errorf("patched fields not applied: %+v", stored)
	}
	if stored.CompanyName != "Original Name" {
		t.Errorf("omitted field was clobbered: %q", stored.CompanyName)
	}
}

func TestUpdateMyRealtorProfileWithoutProfile(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{})

	app := buildRealtorApp(t, &utils.Identity{UID: "uid-ghost"})
	resp := doJSON(t, app, http.MethodPatch, "/realtors/me", `{"contact":"+1"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("patching a missing profile should 404, got %d", resp.Code)
	}
}

func TestGetRealtorPublic(t *testing.T) {
	db := newTestDB(t)
	setTestConf(t, &utils.Config{})

	realtor := seedRealtor(t, db, "uid-public", "Visible Homes")
	app := buildRealtorApp(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/realtors/"+realtor.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if decodeBody(t, resp)["company_name"] != "Visible Homes" {
		t.Error("public profile payload missing company name")
	}

	resp = doJSON(t, app, http.MethodGet, "/realtors/missing-id", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", resp.Code)
	}
}
