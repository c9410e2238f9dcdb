package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/service"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

// AlbumsHandler serves album routes nested under collections, plus the
// public artist and genre indexes.
type AlbumsHandler struct {
	AlbumService *service.AlbumService
}

type albumRequest struct {
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	Genre           string `json:"genre"`
	ReleaseYear     *int   `json:"releaseYear"`
	Description     string `json:"description"`
	CoverCondition  string `json:"coverCondition"`
	RecordCondition string `json:"recordCondition"`
}

type albumResponse struct {
	ID              string    `json:"id"`
	CollectionID    string    `json:"collectionId"`
	Title           string    `json:"title"`
	ArtistID        string    `json:"artistId"`
	GenreID         string    `json:"genreId"`
	ReleaseYear     *int      `json:"releaseYear,omitempty"`
	Description     string    `json:"description"`
	CoverCondition  string    `json:"coverCondition"`
	RecordCondition string    `json:"recordCondition"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toAlbumResponse(a domain.Album) albumResponse {
	return albumResponse{
		ID:              a.ID,
		CollectionID:    a.CollectionID,
		Title:           a.Title,
		ArtistID:        a.ArtistID,
		GenreID:         a.GenreID,
		ReleaseYear:     a.ReleaseYear,
		Description:     a.Description,
		CoverCondition:  string(a.CoverCondition),
		RecordCondition: string(a.RecordCondition),
		CreatedAt:       a.CreatedAt,
	}
}

// HandleAdd godoc
//
//	@Summary	Add an album to a collection
//	@Tags		Albums
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Collection id"
//	@Param		album	body		albumRequest	true	"Album fields; artist and genre are names"
//	@Success	201		{object}	albumResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/collections/{id}/albums [post].
func (h *AlbumsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	a, err := h.AlbumService.Add(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id"), service.AddAlbumInput{
		Title:           req.Title,
		ArtistName:      req.Artist,
		GenreName:       req.Genre,
		ReleaseYear:     req.ReleaseYear,
		Description:     req.Description,
		CoverCondition:  domain.Condition(req.CoverCondition),
		RecordCondition: domain.Condition(req.RecordCondition),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAlbumResponse(a))
}

// HandleList godoc
//
//	@Summary	List the albums of a collection
//	@Tags		Albums
//	@Produce	json
//	@Param		id	path	string	true	"Collection id"
//	@Success	200	{array}	albumResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/collections/{id}/albums [get].
func (h *AlbumsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.AlbumService.List(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]albumResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAlbumResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type artistResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country,omitempty"`
	Biography string `json:"biography,omitempty"`
}

type genreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HandleListArtists godoc
//
//	@Summary	List all artists
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}	artistResponse
//	@Router		/artists [get].
func (h *AlbumsHandler) HandleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.AlbumService.ListArtists(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]artistResponse, 0, len(artists))
	for _, a := range artists {
		out = append(out, artistResponse{ID: a.ID, Name: a.Name, Country: a.Country, Biography: a.Biography})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListGenres godoc
//
//	@Summary	List all genres
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}	genreResponse
//	@Router		/genres [get].
func (h *AlbumsHandler) HandleListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.AlbumService.ListGenres(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]genreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, genreResponse{ID: g.ID, Name: g.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
