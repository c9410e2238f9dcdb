package httpx

import (
	"context"
	"net/http"

	"github.com/vinylkeeper/vinylkeeper/pkg/jwtx"
	"github.com/vinylkeeper/vinylkeeper/pkg/slogx"
)

// AccessTokenCookie is the cookie carrying the access token.
const AccessTokenCookie = "access_token"

// SessionMiddleware authenticates requests from the access-token cookie.
// The session travels in cookies, not an Authorization header, because the
// front end is a separate-origin browser app.
func SessionMiddleware(v *jwtx.RS256Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				writeSessionError(w)
				return
			}

			claims, err := v.Verify(cookie.Value)
			if err != nil {
				log.Warn("session token verification failed", "err", err)
				writeSessionError(w)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserUUID, claims.SubjectUUID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeSessionError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error": "not_authenticated",
	})
}
