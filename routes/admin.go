package routes

import (
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

// CheckAdmin reports whether the caller's verified email is on the admin
// allow-list. Always 200 for an authenticated caller.
func CheckAdmin(ctx iris.Context) {
	identity := utils.CurrentIdentity(ctx)
	if identity == nil {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"message": "Authentication required"})
		return
	}

	if identity.Email == "" {
		ctx.JSON(iris.Map{"is_admin": false, "reason": "No email in token"})
		return
	}

	ctx.JSON(iris.Map{
		"is_admin":                utils.Conf.IsAdmin(identity.Email),
		"email":                   identity.Email,
		"admin_emails_configured": utils.Conf.AdminConfigured(),
	})
}
