package utils

import (
	"errors"

	"github.com/kataras/iris/v12"
)

const identityContextKey = "identity"

// Authenticate verifies the bearer credential and stores the caller identity
// in the request context. It distinguishes an unconfigured verifier (503)
// from a missing header (400) and a bad token (401).
func Authenticate(ctx iris.Context) {
	if Conf == nil || Conf.FirebaseProjectID == "" {
		ctx.StopWithJSON(iris.StatusServiceUnavailable, iris.Map{
			"message": "Identity provider is not configured on the backend.",
			"error":   "identity_not_configured",
		})
		return
	}

	header := ctx.GetHeader("Authorization")
	if header == "" {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"message": "No token provided"})
		return
	}

	identity, err := VerifyIDToken(header)
	if err != nil {
		if errors.Is(err, ErrIdentityUnconfigured) {
			ctx.StopWithJSON(iris.StatusServiceUnavailable, iris.Map{
				"message": "Identity provider is not configured on the backend.",
				"error":   "identity_not_configured",
			})
			return
		}
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "Invalid token provided."})
		return
	}

	ctx.Values().Set(identityContextKey, identity)
	ctx.Next()
}

// CurrentIdentity returns the identity stored by Authenticate, or nil.
func CurrentIdentity(ctx iris.Context) *Identity {
	if v := ctx.Values().Get(identityContextKey); v != nil {
		if identity, ok := v.(*Identity); ok {
			return identity
		}
	}
	return nil
}

// SetIdentity injects a caller identity; route tests use it in place of
// Authenticate.
func SetIdentity(ctx iris.Context, identity *Identity) {
	ctx.Values().Set(identityContextKey, identity)
}

// RequireAdmin gates a route on allow-list membership of the verified email.
// Runs after Authenticate. An empty allow-list is a configuration failure
// (503), not a permission denial (403).
func RequireAdmin(ctx iris.Context) {
	identity := CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "Authentication required"})
		return
	}
	if identity.Email == "" {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "User email not found in token"})
		return
	}
	if Conf == nil || !Conf.AdminConfigured() {
		ctx.StopWithJSON(iris.StatusServiceUnavailable, iris.Map{
			"message": "Admin access not configured. Please set ADMIN_EMAILS environment variable.",
			"error":   "admin_not_configured",
		})
		return
	}
	if !Conf.IsAdmin(identity.Email) {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{
			"message": "Admin access required. You don't have permission to perform this action.",
			"error":   "insufficient_permissions",
		})
		return
	}
	ctx.Next()
}
