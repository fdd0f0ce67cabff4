package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lazygeek007/connect-four/internal/config"
	"github.com/lazygeek007/connect-four/internal/service/game"
	"github.com/lazygeek007/connect-four/internal/transport/http/middleware"
)

// RouterConfig holds everything the router needs to wire the API.
type RouterConfig struct {
	Manager   *game.SessionManager
	Config    *config.Config
	WSHandler http.Handler
}

// NewRouter creates the API router with all routes configured.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := NewGameHandler(cfg.Manager, cfg.Config.JWTSecret, cfg.Config.TokenTTL, cfg.Config.SearchDepth)

	authMiddleware := middleware.Auth(cfg.Config.JWTSecret)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery)
	api.Use(middleware.Logging)
	api.Use(middleware.CORS(cfg.Config.AllowedOrigins))

	// Creating a game needs no token; the response hands one out.
	api.HandleFunc("/game", gameHandler.CreateGame).Methods(http.MethodPost)

	protected := api.PathPrefix("/game").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/{id}", gameHandler.GetGame).Methods(http.MethodGet)
	protected.HandleFunc("/{id}/move", gameHandler.PlayMove).Methods(http.MethodPost)
	protected.HandleFunc("/{id}", gameHandler.DeleteGame).Methods(http.MethodDelete)

	// Preflight requests must reach the CORS middleware, which answers
	// them before this fallback ever runs.
	api.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodOptions)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", gameHandler.Health).Methods(http.MethodGet)

	// The websocket endpoint skips the logging middleware so the
	// connection hijack keeps working.
	if cfg.WSHandler != nil {
		r.Handle("/ws", cfg.WSHandler)
	}

	return r
}
