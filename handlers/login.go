package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/templates"
)

// authCookieMaxAge keeps the session cookie for 30 days; the embedded auth
// token itself expires per the users collection token settings.
const authCookieMaxAge = 30 * 24 * 60 * 60

// HandleLoginPage renders the login screen, or redirects home when a
// session is already active.
func HandleLoginPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if CurrentUser(e.Request) != nil {
			return e.Redirect(http.StatusFound, "/")
		}
		return templates.LoginPage("").Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin checks the submitted credentials against the users auth
// collection and starts a cookie session.
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		email := strings.TrimSpace(e.Request.FormValue("email"))
		password := e.Request.FormValue("password")

		user, err := app.FindAuthRecordByEmail("users", email)
		if err != nil || !user.ValidatePassword(password) {
			e.Response.WriteHeader(http.StatusUnauthorized)
			return templates.LoginPage("Email atau password salah.").Render(e.Request.Context(), e.Response)
		}

		token, err := user.NewAuthToken()
		if err != nil {
			log.Printf("login: failed to issue auth token for %s: %v", email, err)
			e.Response.WriteHeader(http.StatusInternalServerError)
			return templates.LoginPage("Terjadi kesalahan, coba lagi.").Render(e.Request.Context(), e.Response)
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     AuthCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   authCookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.Redirect(http.StatusFound, "/")
	}
}

// HandleLogout drops the session cookie.
func HandleLogout() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     AuthCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.Redirect(http.StatusFound, "/login")
	}
}
