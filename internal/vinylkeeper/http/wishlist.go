package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/service"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

// WishlistHandler serves /wishlist.
type WishlistHandler struct {
	WishlistService *service.WishlistService
}

type wishlistRequest struct {
	AlbumID string `json:"albumId"`
}

type wishlistResponse struct {
	ID        string    `json:"id"`
	AlbumID   string    `json:"albumId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toWishlistResponse(e domain.WishlistEntry) wishlistResponse {
	return wishlistResponse{ID: e.ID, AlbumID: e.AlbumID, CreatedAt: e.CreatedAt}
}

// HandleAdd godoc
//
//	@Summary	Add an album to the wishlist
//	@Tags		Wishlist
//	@Accept		json
//	@Produce	json
//	@Param		entry	body		wishlistRequest	true	"Album id"
//	@Success	201		{object}	wishlistResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/wishlist [post].
func (h *WishlistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AlbumID == "" {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	e, err := h.WishlistService.Add(ctx, httpx.UserUUIDFromContext(ctx), req.AlbumID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWishlistResponse(e))
}

// HandleList godoc
//
//	@Summary	List the wishlist
//	@Tags		Wishlist
//	@Produce	json
//	@Success	200	{array}	wishlistResponse
//	@Router		/wishlist [get].
func (h *WishlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.WishlistService.List(ctx, httpx.UserUUIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]wishlistResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toWishlistResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRemove godoc
//
//	@Summary	Remove a wishlist entry
//	@Tags		Wishlist
//	@Param		id	path	string	true	"Entry id"
//	@Success	204
//	@Router		/wishlist/{id} [delete].
func (h *WishlistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.WishlistService.Remove(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
