package http

import (
	"errors"
	"net/http"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/service"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
	"github.com/vinylkeeper/vinylkeeper/pkg/slogx"
)

// LoginStatusResponse is the canonical session-state shape. The front end
// keys off isLoggedIn and nothing else.
type LoginStatusResponse struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Message    string `json:"message,omitempty"`
}

// ErrorResponse is the generic error shape for non-auth endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service health for the probe endpoints.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, ErrorResponse{Error: msg})
}

// writeServiceError maps service and store sentinels onto HTTP statuses.
// Ownership violations arrive as store.ErrNotFound already, so they come out
// as 404 without a separate branch.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input")
	case errors.Is(err, service.ErrAlbumOnLoan):
		writeError(w, http.StatusConflict, "album_on_loan")
	case errors.Is(err, store.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already_exists")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}
