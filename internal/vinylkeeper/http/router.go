package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/service"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/httpx"
	"github.com/vinylkeeper/vinylkeeper/pkg/jwtx"
	"github.com/vinylkeeper/vinylkeeper/pkg/slogx"

	_ "github.com/vinylkeeper/vinylkeeper/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.RS256Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService       *service.AuthService
	CollectionService *service.CollectionService
	AlbumService      *service.AlbumService
	RatingService     *service.RatingService
	LoanService       *service.LoanService
	WishlistService   *service.WishlistService
}

func NewRouter(
	verifier *jwtx.RS256Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCollections()
	r.registerAlbums()
	r.registerCatalog()
	r.registerLoans()
	r.registerWishlist()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			VinylKeeper API
//	@version		0.1.0
//	@description	Backend for the VinylKeeper record-collection app. Sessions
//	@description	travel in HTTP-only cookies carrying RS256-signed JWTs.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.HandleFunc("POST /auth", h.HandleLogin)
	r.Mux.HandleFunc("GET /auth/check-auth", h.HandleCheckAuth)
	r.Mux.HandleFunc("POST /auth/logout", h.HandleLogout)
	r.Mux.HandleFunc("POST /auth/forgot-password", h.HandleForgotPassword)
	r.Mux.HandleFunc("POST /auth/reset-password", h.HandleResetPassword)
}

// session wraps a handler with the cookie-session authentication middleware
// and the per-IP limit for authenticated operations. Each route gets its own
// limiter, so the budget is per route, not shared across the API.
func (r *Router) session(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.RateLimitByIP(httpx.LenientLimit),
		httpx.SessionMiddleware(r.verifier),
	)
}

func (r *Router) registerCollections() {
	h := &CollectionsHandler{CollectionService: r.CollectionService}

	r.Mux.Handle("POST /collections", r.session(h.HandleCreate))
	r.Mux.Handle("GET /collections", r.session(h.HandleList))
	r.Mux.Handle("GET /collections/{id}", r.session(h.HandleGet))
	r.Mux.Handle("DELETE /collections/{id}", r.session(h.HandleDelete))
}

func (r *Router) registerAlbums() {
	albums := &AlbumsHandler{AlbumService: r.AlbumService}
	ratings := &RatingsHandler{RatingService: r.RatingService}

	r.Mux.Handle("POST /collections/{id}/albums", r.session(albums.HandleAdd))
	r.Mux.Handle("GET /collections/{id}/albums", r.session(albums.HandleList))
	r.Mux.Handle("PUT /albums/{id}/rating", r.session(ratings.HandleRate))
	r.Mux.Handle("GET /albums/{id}/ratings", r.session(ratings.HandleListByAlbum))
}

func (r *Router) registerCatalog() {
	h := &AlbumsHandler{AlbumService: r.AlbumService}

	// Public reference data; rate limited since there is no session gate.
	r.Mux.Handle("GET /artists",
		httpx.Chain(http.HandlerFunc(h.HandleListArtists),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /genres",
		httpx.Chain(http.HandlerFunc(h.HandleListGenres),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerLoans() {
	h := &LoansHandler{LoanService: r.LoanService}

	r.Mux.Handle("POST /albums/{id}/loan", r.session(h.HandleLend))
	r.Mux.Handle("POST /loans/{id}/return", r.session(h.HandleReturn))
	r.Mux.Handle("GET /loans", r.session(h.HandleList))
}

func (r *Router) registerWishlist() {
	h := &WishlistHandler{WishlistService: r.WishlistService}

	r.Mux.Handle("GET /wishlist", r.session(h.HandleList))
	r.Mux.Handle("POST /wishlist", r.session(h.HandleAdd))
	r.Mux.Handle("DELETE /wishlist/{id}", r.session(h.HandleRemove))
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
