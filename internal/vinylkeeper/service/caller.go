package service

import (
	"context"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
)

// resolveCaller maps the external UUID asserted by a session token to the
// stored user. Inactive accounts read as missing, same as the refresh path.
func resolveCaller(ctx context.Context, st store.Store, userUUID string) (domain.User, error) {
	u, err := st.Users().GetUserByUUID(ctx, userUUID)
	if err != nil {
		return domain.User{}, err
	}
	if !u.IsActive {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}
