package handlers

import (
	"net/http"
	"time"

	"github.com/bc99/gaming-platform/internal/token"
)

// sessionCookieMaxAge matches the session record TTL.
const sessionCookieMaxAge = 30 * 24 * time.Hour

// ErrorResponse is the error body returned by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	Message string `json:"message"`
}

// setSessionCookie attaches the session token as an httpOnly cookie.
func setSessionCookie(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     token.CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     token.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
