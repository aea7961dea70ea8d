package routes

import (
	"net/http"
	"testing"

	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

func buildGateApp(t *testing.T, identity *utils.Identity) *iris.Application {
	return newTestApp(t, func(app *iris.Application) {
		auth := stubIdentity(identity)
		app.Get("/admin/check", auth, CheckAdmin)
		app.Get("/guarded", auth, utils.RequireAdmin, func(ctx iris.Context) {
			ctx.JSON(iris.Map{"ok": true})
		})
	})
}

func TestAdminGateAllowsListedEmail(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{AdminEmails: []string{"boss@example.com"}})

	app := buildGateApp(t, &utils.Identity{UID: "u1", Email: "boss@example.com"})
	resp := doJSON(t, app, http.MethodGet, "/guarded", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for listed admin, got %d", resp.Code)
	}
}

func TestAdminGateIsCaseInsensitive(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{AdminEmails: []string{"boss@example.com"}})

	app := buildGateApp(t, &utils.Identity{UID: "u1", Email: "BOSS@Example.COM"})
	resp := doJSON(t, app, http.MethodGet, "/guarded", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("membership should be case-insensitive, got %d", resp.Code)
	}
}

func TestAdminGateRejectsOutsiders(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{AdminEmails: []string{"boss@example.com"}})

	app := buildGateApp(t, &utils.Identity{UID: "u2", Email: "intern@example.com"})
	resp := doJSON(t, app, http.MethodGet, "/guarded", "")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unlisted email, got %d", resp.Code)
	}
	if decodeBody(t, resp)["error"] != "insufficient_permissions" {
		t.Error("expected insufficient_permissions error code")
	}
}

func TestAdminGateUnconfiguredIs503(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{})

	app := buildGateApp(t, &utils.Identity{UID: "u1", Email: "boss@example.com"})
	resp := doJSON(t, app, http.MethodGet, "/guarded", "")
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("empty allow-list should 503, not deny, got %d", resp.Code)
	}
	if decodeBody(t, resp)["error"] != "admin_not_configured" {
		t.Error("expected admin_not_configured error code")
	}
}

func TestAdminGateNeedsEmailClaim(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{AdminEmails: []string{"boss@example.com"}})

	app := buildGateApp(t, &utils.Identity{UID: "u3"})
	resp := doJSON(t, app, http.MethodGet, "/guarded", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("missing email claim should 401, got %d", resp.Code)
	}
}

func TestCheckAdminAlwaysSucceedsForAuthenticated(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{AdminEmails: []string{"boss@example.com"}})

	app := buildGateApp(t, &utils.Identity{UID: "u2", Email: "intern@example.com"})
	resp := doJSON(t, app, http.MethodGet, "/admin/check", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["is_admin"] != false {
		t.Error("unlisted caller should report is_admin=false")
	}
	if body["admin_emails_configured"] != true {
		t.Error("expected admin_emails_configured=true")
	}

	app = buildGateApp(t, &utils.Identity{UID: "u1", Email: "boss@example.com"})
	resp = doJSON(t, app, http.MethodGet, "/admin/check", "")
	if decodeBody(t, resp)["is_admin"] != true {
		t.Error("listed caller should report is_admin=true")
	}
}
