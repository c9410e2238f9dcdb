package httpx

import "context"

type ctxKey string

// CtxKeyUserUUID carries the authenticated principal's external UUID.
const CtxKeyUserUUID ctxKey = "user_uuid"

// UserUUIDFromContext returns the authenticated user's external UUID, or ""
// when the request carries no valid session.
func UserUUIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserUUID).(string); ok {
		return v
	}
	return ""
}
