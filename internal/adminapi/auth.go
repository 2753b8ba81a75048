package adminapi

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mengsruy/webstore/internal/webserver"
)

const adminSessionKey = "admin"

// RegisterRoutes wires admin auth and the guarded CRUD routes.
func RegisterRoutes() {
	webserver.GET("/admin", loginPage)
	webserver.POST("/admin/login", login)
	webserver.GET("/admin/logout", logout)

	registerProductRoutes()
}

func loginPage(c echo.Context) error {
	return webserver.RenderPage(c, "admin_login.html", nil)
}

// login grants the session admin flag only on an exact, case-sensitive
// credential match. Failure leaves session state untouched.
func login(c echo.Context) error {
	creds := webserver.GetApp(c).Config().Admin
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username != creds.Username || password != creds.Password {
		zap.L().Warn("admin login rejected", zap.String("username", username))
		webserver.AddFlash(c, "danger", "Invalid credentials.")
		return c.Redirect(http.StatusFound, "/admin")
	}

	sess, err := session.Get(webserver.SessionName, c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sess.Values[adminSessionKey] = true
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	zap.L().Info("admin login", zap.String("username", username))
	webserver.AddFlash(c, "success", "Welcome, admin!")
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// logout clears the admin flag unconditionally; safe to repeat.
func logout(c echo.Context) error {
	sess, err := session.Get(webserver.SessionName, c)
	if err == nil {
		delete(sess.Values, adminSessionKey)
		_ = sess.Save(c.Request(), c.Response())
	}
	webserver.AddFlash(c, "info", "Logged out.")
	return c.Redirect(http.StatusFound, "/admin")
}

func isAdmin(c echo.Context) bool {
	sess, err := session.Get(webserver.SessionName, c)
	if err != nil {
		return false
	}
	flag, ok := sess.Values[adminSessionKey].(bool)
	return ok && flag
}

// RequireAdmin short-circuits dashboard and mutation routes for anonymous
// sessions before any store access happens.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !isAdmin(c) {
			webserver.AddFlash(c, "warning", "Please log in as admin.")
			return c.Redirect(http.StatusFound, "/admin")
		}
		return next(c)
	}
}
