package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

func TestCollectionRoutes(t *testing.T) {
	srv := newTestServer(t)
	user := srv.createUser(t, "a@x.com", "secret123")

	token, err := srv.auth.Signer.Sign(user.UserUUID, time.Minute)
	require.NoError(t, err)
	session := &http.Cookie{Name: httpx.AccessTokenCookie, Value: token}

	t.Run("rejected without a session cookie", func(t *testing.T) {
		resp := get(t, srv.URL+"/collections")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejected with an expired session cookie", func(t *testing.T) {
		stale, err := srv.auth.Signer.Sign(user.UserUUID, -time.Minute)
		require.NoError(t, err)

		resp := get(t, srv.URL+"/collections",
			&http.Cookie{Name: httpx.AccessTokenCookie, Value: stale})
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	var created collectionResponse

	t.Run("create then fetch", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/collections",
			`{"name":"Crates","description":"basement finds"}`, session)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()
		require.Equal(t, "Crates", created.Name)
		require.NotEmpty(t, created.ID)

		getResp := get(t, srv.URL+"/collections/"+created.ID, session)
		defer getResp.Body.Close()
		require.Equal(t, http.StatusOK, getResp.StatusCode)
	})

	t.Run("another user's private collection reads as 404", func(t *testing.T) {
		other := srv.createUser(t, "b@x.com", "secret123")
		otherToken, err := srv.auth.Signer.Sign(other.UserUUID, time.Minute)
		require.NoError(t, err)

		resp := get(t, srv.URL+"/collections/"+created.ID,
			&http.Cookie{Name: httpx.AccessTokenCookie, Value: otherToken})
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/collections", `{"name":""}`, session)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPublicCatalogRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/artists")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var artists []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&artists))
	require.Empty(t, artists)
}
