package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

func del(t *testing.T, url string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestWishlistRoutes(t *testing.T) {
	srv := newTestServer(t)
	user := srv.createUser(t, "a@x.com", "secret123")

	token, err := srv.auth.Signer.Sign(user.UserUUID, time.Minute)
	require.NoError(t, err)
	session := &http.Cookie{Name: httpx.AccessTokenCookie, Value: token}

	var created collectionResponse
	resp := postJSON(t, srv.URL+"/collections", `{"name":"Crates"}`, session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	var album albumResponse
	resp = postJSON(t, srv.URL+"/collections/"+created.ID+"/albums",
		`{"title":"Remain in Light","artist":"Talking Heads","genre":"New Wave"}`, session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&album))
	resp.Body.Close()

	var entry wishlistResponse

	t.Run("add then list", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/wishlist", `{"albumId":"`+album.ID+`"}`, session)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
		resp.Body.Close()
		require.Equal(t, album.ID, entry.AlbumID)

		listResp := get(t, srv.URL+"/wishlist", session)
		defer listResp.Body.Close()
		require.Equal(t, http.StatusOK, listResp.StatusCode)

		var list []wishlistResponse
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
		require.Len(t, list, 1)
	})

	t.Run("removing a nonexistent entry yields 404", func(t *testing.T) {
		resp := del(t, srv.URL+"/wishlist/does-not-exist", session)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("removing another user's entry yields 404", func(t *testing.T) {
		other := srv.createUser(t, "b@x.com", "secret123")
		otherToken, err := srv.auth.Signer.Sign(other.UserUUID, time.Minute)
		require.NoError(t, err)

		resp := del(t, srv.URL+"/wishlist/"+entry.ID,
			&http.Cookie{Name: httpx.AccessTokenCookie, Value: otherToken})
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		// The owner still sees the entry.
		listResp := get(t, srv.URL+"/wishlist", session)
		defer listResp.Body.Close()
		var list []wishlistResponse
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
		require.Len(t, list, 1)
	})

	t.Run("owner removes the entry", func(t *testing.T) {
		resp := del(t, srv.URL+"/wishlist/"+entry.ID, session)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		listResp := get(t, srv.URL+"/wishlist", session)
		defer listResp.Body.Close()
		var list []wishlistResponse
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
		require.Empty(t, list)
	})

	t.Run("rejected without a session cookie", func(t *testing.T) {
		resp := get(t, srv.URL+"/wishlist")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
