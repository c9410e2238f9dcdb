package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/service"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

// CollectionsHandler serves /collections.
type CollectionsHandler struct {
	CollectionService *service.CollectionService
}

type collectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

type collectionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCollectionResponse(c domain.Collection) collectionResponse {
	return collectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsPublic:    c.IsPublic,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// HandleCreate godoc
//
//	@Summary	Create a collection
//	@Tags		Collections
//	@Accept		json
//	@Produce	json
//	@Param		collection	body		collectionRequest	true	"Collection fields"
//	@Success	201			{object}	collectionResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/collections [post].
func (h *CollectionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req collectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	c, err := h.CollectionService.Create(ctx, httpx.UserUUIDFromContext(ctx), req.Name, req.Description, req.IsPublic)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCollectionResponse(c))
}

// HandleList godoc
//
//	@Summary	List own collections
//	@Tags		Collections
//	@Produce	json
//	@Success	200	{array}	collectionResponse
//	@Router		/collections [get].
func (h *CollectionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.CollectionService.List(ctx, httpx.UserUUIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]collectionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCollectionResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get a collection
//	@Tags		Collections
//	@Produce	json
//	@Param		id	path		string	true	"Collection id"
//	@Success	200	{object}	collectionResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/collections/{id} [get].
func (h *CollectionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := h.CollectionService.Get(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCollectionResponse(c))
}

// HandleDelete godoc
//
//	@Summary	Delete a collection and its albums
//	@Tags		Collections
//	@Param		id	path	string	true	"Collection id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/collections/{id} [delete].
func (h *CollectionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CollectionService.Delete(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
