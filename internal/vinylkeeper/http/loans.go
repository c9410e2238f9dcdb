package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/service"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
)

// LoansHandler serves loan routes.
type LoansHandler struct {
	LoanService *service.LoanService
}

type loanRequest struct {
	Borrower string `json:"borrower"`
}

type loanResponse struct {
	ID         string     `json:"id"`
	AlbumID    string     `json:"albumId"`
	Borrower   string     `json:"borrower"`
	LoanedAt   time.Time  `json:"loanedAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}

func toLoanResponse(l domain.Loan) loanResponse {
	return loanResponse{
		ID:         l.ID,
		AlbumID:    l.AlbumID,
		Borrower:   l.Borrower,
		LoanedAt:   l.LoanedAt,
		ReturnedAt: l.ReturnedAt,
	}
}

// HandleLend godoc
//
//	@Summary	Lend an album out
//	@Tags		Loans
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Album id"
//	@Param		loan	body		loanRequest	true	"Borrower name"
//	@Success	201		{object}	loanResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse	"album already on loan"
//	@Router		/albums/{id}/loan [post].
func (h *LoansHandler) HandleLend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	l, err := h.LoanService.Lend(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id"), req.Borrower)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toLoanResponse(l))
}

// HandleReturn godoc
//
//	@Summary	Mark a loan as returned
//	@Tags		Loans
//	@Produce	json
//	@Param		id	path		string	true	"Loan id"
//	@Success	200	{object}	loanResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/loans/{id}/return [post].
func (h *LoansHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	l, err := h.LoanService.Return(ctx, httpx.UserUUIDFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLoanResponse(l))
}

// HandleList godoc
//
//	@Summary	List own loan history
//	@Tags		Loans
//	@Produce	json
//	@Success	200	{array}	loanResponse
//	@Router		/loans [get].
func (h *LoansHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.LoanService.ListByUser(ctx, httpx.UserUUIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]loanResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLoanResponse(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
