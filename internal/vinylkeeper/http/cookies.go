package http

import (
	"net/http"
	"time"

	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

// RefreshTokenCookie is the cookie carrying the refresh token. The access
// token cookie name lives in httpx because the session middleware reads it.
const RefreshTokenCookie = "refresh_token"

// Session cookies are HttpOnly and SameSite=None: the front end is a
// separate-origin browser app, so None (which mandates Secure) is the only
// mode that lets the browser attach them cross-site.
func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func setAccessTokenCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, sessionCookie(httpx.AccessTokenCookie, token, int(ttl.Seconds())))
}

func setRefreshTokenCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, sessionCookie(RefreshTokenCookie, token, int(ttl.Seconds())))
}

// clearTokenCookies expires both session cookies. Safe to call for requests
// that carry no cookies at all; clearing is idempotent.
func clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, sessionCookie(httpx.AccessTokenCookie, "", -1))
	http.SetCookie(w, sessionCookie(RefreshTokenCookie, "", -1))
}
