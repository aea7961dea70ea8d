package routes

import (
	"net/http"
	"testing"

	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

func buildFollowerApp(t *testing.T, identity *utils.Identity) *iris.Application {
	return newTestApp(t, func(app *iris.Application) {
		followers := app.Party("/followers")
		followers.Get("/realtor/{realtorId}", GetRealtorFollowers)
		auth := stubIdentity(identity)
		followers.Post("/{realtorId}", auth, FollowRealtor)
		followers.Delete("/{realtorId}", auth, UnfollowRealtor)
	})
}

func TestFollowerLifecycle(t *testing.T) {
	db := newTestDB(t)
	setTestConf(t, &utils.Config{})

	realtor := seedRealtor(t, db, "uid-followed", "Popular Homes")
	app := buildFollowerApp(t, &utils.Identity{UID: "uid-fan"})

	resp := doJSON(t, app, http.MethodGet, "/followers/realtor/"+realtor.ID, "")
	if got := int(decodeBody(t, resp)["followers"].(float64)); got != 0 {
		t.Fatalf("fresh realtor should have 0 followers, got %d", got)
	}

	resp = doJSON(t, app, http.MethodPost, "/followers/"+realtor.ID, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, app, http.MethodPost, "/followers/"+realtor.ID, "")
	if resp.Code != http.StatusConflict {
		t.Fatalf("following twice should 409, got %d", resp.Code)
	}

	resp = doJSON(t, app, http.MethodGet, "/followers/realtor/"+realtor.ID, "")
	if got := int(decodeBody(t, resp)["followers"].(float64)); got != 1 {
		t.Fatalf("expected 1 follower, got %d", got)
	}

	resp = doJSON(t, app, http.MethodDelete, "/followers/"+realtor.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on unfollow, got %d", resp.Code)
	}
	resp = doJSON(t, app, http.MethodDelete, "/followers/"+realtor.ID, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unfollowing twice should 404, got %d", resp.Code)
	}
}

func TestFollowUnknownRealtor(t *testing.T) {
	newTestDB(t)
	setTestConf(t, &utils.Config{})

	app := buildFollowerApp(t, &utils.Identity{UID: "uid-fan"})
	resp := doJSON(t, app, http.MethodPost, "/followers/no-such-realtor", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
