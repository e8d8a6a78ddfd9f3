package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const CurrentUserKey contextKey = "currentUser"

// AuthCookieName is the session cookie carrying the PocketBase auth token.
const AuthCookieName = "nala_auth"

// CurrentUser extracts the logged-in auth record from the request context,
// or nil when the request is anonymous.
func CurrentUser(r *http.Request) *core.Record {
	if val, ok := r.Context().Value(CurrentUserKey).(*core.Record); ok {
		return val
	}
	return nil
}

func currentUserEmail(r *http.Request) string {
	if user := CurrentUser(r); user != nil {
		return user.Email()
	}
	return ""
}

// LoadAuthState reads the auth cookie, resolves its token to a users record
// and stores the record in the request context. Invalid or expired tokens
// are treated as anonymous; RequireAuth decides what that means per route.
func LoadAuthState(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(AuthCookieName)
		if err == nil && cookie.Value != "" {
			user, err := app.FindAuthRecordByToken(cookie.Value, core.TokenTypeAuth)
			if err == nil {
				ctx := context.WithValue(e.Request.Context(), CurrentUserKey, user)
				e.Request = e.Request.WithContext(ctx)
			}
		}
		return e.Next()
	}
}

// RequireAuth guards a handler behind a login. Anonymous page requests are
// redirected to /login; HTMX requests get an HX-Redirect instead so the
// browser navigates rather than swapping the login page into a fragment.
func RequireAuth(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if CurrentUser(e.Request) == nil {
			if e.Request.Header.Get("HX-Request") == "true" {
				e.Response.Header().Set("HX-Redirect", "/login")
				return e.String(http.StatusUnauthorized, "")
			}
			return e.Redirect(http.StatusFound, "/login")
		}
		return next(e)
	}
}
