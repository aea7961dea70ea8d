package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"
)

func newAuthApp(t *testing.T) *iris.Application {
	t.Helper()
	app := iris.New()
	app.Get("/private", Authenticate, func(ctx iris.Context) {
		ctx.JSON(iris.Map{"uid": CurrentIdentity(ctx).UID})
	})
	if err := app.Build(); err != nil {
		t.Fatalf("building app: %v", err)
	}
	return app
}

func serve(app *iris.Application, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestAuthenticateUnconfiguredVerifier(t *testing.T) {
	prev := Conf
	Conf = &Config{}
	t.Cleanup(func() { Conf = prev })

	app := newAuthApp(t)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer whatever")

	resp := serve(app, req)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("missing project id should 503, got %d", resp.Code)
	}
}

func TestAuthenticateMissingHeader(t *testing.T) {
	prev := Conf
	Conf = &Config{FirebaseProjectID: "demo-project"}
	t.Cleanup(func() { Conf = prev })

	app := newAuthApp(t)
	resp := serve(app, httptest.NewRequest(http.MethodGet, "/private", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing Authorization header should 400, got %d", resp.Code)
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	app := iris.New()
	identity := &Identity{UID: "u1", Email: "u1@example.com"}
	app.Get("/echo", func(ctx iris.Context) {
		SetIdentity(ctx, identity)
		ctx.Next()
	}, func(ctx iris.Context) {
		got := CurrentIdentity(ctx)
		if got == nil || got.UID != "u1" {
			ctx.StatusCode(http.StatusInternalServerError)
			return
		}
		ctx.JSON(iris.Map{"ok": true})
	})
	if err := app.Build(); err != nil {
		t.Fatalf("building app: %v", err)
	}

	resp := serve(app, httptest.NewRequest(http.MethodGet, "/echo", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestCurrentIdentityAbsent(t *testing.T) {
	app := iris.New()
	app.Get("/bare", func(ctx iris.Context) {
		if CurrentIdentity(ctx) != nil {
			ctx.StatusCode(http.StatusInternalServerError)
			return
		}
		ctx.JSON(iris.Map{"ok": true})
	})
	if err := app.Build(); err != nil {
		t.Fatalf("building app: %v", err)
	}

	resp := serve(app, httptest.NewRequest(http.MethodGet, "/bare", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
