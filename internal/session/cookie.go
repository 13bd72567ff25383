// Package session carries the session token between client and server: a
// secure cookie with a bearer-header fallback. Clearing a cookie only works
// when the attributes match the set path exactly, so both go through the one
// attribute builder here.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/auth"
)

const CookieName = "token"

// newCookie is the single source of cookie attributes. In production the
// frontend is hosted cross-site, so SameSite must relax to None (with Secure);
// in development it stays Lax over plain HTTP.
func newCookie(token string, maxAge int, production bool) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if production {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   production,
		SameSite: sameSite,
	}
}

// Set attaches the session cookie; its lifetime mirrors the token expiry.
func Set(w http.ResponseWriter, token string, production bool) {
	http.SetCookie(w, newCookie(token, int(auth.SessionTokenExpiry/time.Second), production))
}

// Clear expires the session cookie using the same attribute set as Set.
func Clear(w http.ResponseWriter, production bool) {
	http.SetCookie(w, newCookie("", -1, production))
}

// TokenFromRequest extracts the session token: cookie first, then
// Authorization: Bearer. No other source (query, body) is accepted.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
