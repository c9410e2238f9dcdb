package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/service"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

// RatingsHandler serves album rating routes.
type RatingsHandler struct {
	RatingService *service.RatingService
}

type ratingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type ratingResponse struct {
	ID        string    `json:"id"`
	AlbumID   string    `json:"albumId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toRatingResponse(rt domain.Rating) ratingResponse {
	return ratingResponse{
		ID:        rt.ID,
		AlbumID:   rt.AlbumID,
		Score:     rt.Score,
		Comment:   rt.Comment,
		UpdatedAt: rt.UpdatedAt,
	}
}

// HandleRate godoc
//
//	@Summary	Rate an album (0-5); rating again replaces the old score
//	@Tags		Ratings
//	@Accept		json
//	@Param		id		path	string			true	"Album id"
//	@Param		rating	body	ratingRequest	true	"Score and optional comment"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/albums/{id}/rating [put].
func (h *RatingsHandler) HandleRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	err := h.RatingService.Rate(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id"), req.Score, req.Comment)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListByAlbum godoc
//
//	@Summary	List the ratings of an album
//	@Tags		Ratings
//	@Produce	json
//	@Param		id	path	string	true	"Album id"
//	@Success	200	{array}	ratingResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/albums/{id}/ratings [get].
func (h *RatingsHandler) HandleListByAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.RatingService.ListByAlbum(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]ratingResponse, 0, len(list))
	for _, rt := range list {
		out = append(out, toRatingResponse(rt))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
