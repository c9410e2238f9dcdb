package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
)

func TestCollectionOwnership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CollectionService{Store: st}

	alice := createTestUser(t, st, "alice@example.com", "secret123", true)
	mallory := createTestUser(t, st, "mallory@example.com", "secret123", true)

	private, err := svc.Create(ctx, alice.UserUUID, "Crates", "basement finds", false)
	require.NoError(t, err)
	require.Equal(t, alice.ID, private.OwnerID)

	public, err := svc.Create(ctx, alice.UserUUID, "Showcase", "", true)
	require.NoError(t, err)

	t.Run("owner sees own collections", func(t *testing.T) {
		got, err := svc.Get(ctx, alice.UserUUID, private.ID)
		require.NoError(t, err)
		require.Equal(t, "Crates", got.Name)

		list, err := svc.List(ctx, alice.UserUUID)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("stranger cannot see a private collection", func(t *testing.T) {
		_, err := svc.Get(ctx, mallory.UserUUID, private.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("stranger can see a public collection", func(t *testing.T) {
		got, err := svc.Get(ctx, mallory.UserUUID, public.ID)
		require.NoError(t, err)
		require.Equal(t, "Showcase", got.Name)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, mallory.UserUUID, public.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, alice.UserUUID, "   ", "", false)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("owner deletes and list shrinks", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, alice.UserUUID, private.ID))

		list, err := svc.List(ctx, alice.UserUUID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}
