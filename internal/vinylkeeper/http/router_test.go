package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionRoutesRateLimited(t *testing.T) {
	srv := newTestServer(t)

	// The limiter sits in front of the session gate, so cookie-less
	// requests still consume the per-route budget. The bucket refills
	// while the loop runs, hence the slack beyond the burst size.
	var limited *http.Response
	for i := 0; i < 120; i++ {
		resp := get(t, srv.URL+"/wishlist")
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = resp
			break
		}
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}

	require.NotNil(t, limited, "per-route budget never ran out")
	defer limited.Body.Close()
	require.NotEmpty(t, limited.Header.Get("Retry-After"))

	// Each route has its own budget; a different route is unaffected.
	other := get(t, srv.URL+"/loans")
	defer other.Body.Close()
	require.Equal(t, http.StatusUnauthorized, other.StatusCode)
}
