package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger) // Custom conditional HTTP logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Dashboard shell and assets (served from embedded filesystem)
	if h.staticFS != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))
		r.Get("/", h.handleIndex)
	}

	// Results API
	r.Get("/api/overview", h.handleOverview)
	r.Get("/api/parties", h.handleParties)
	r.Get("/api/voteshare", h.handleVoteShare)
	r.Get("/api/states", h.handleStates)
	r.Get("/api/states/{state}", h.handleState)
	r.Get("/api/constituencies", h.handleConstituencies)
	r.Get("/api/compare/parties", h.handleCompareParties)
	r.Get("/api/compare/states", h.handleCompareStates)

	// Question panel
	r.Post("/api/ask", h.handleAsk)
	if h.AskWS != nil {
		r.Get("/api/ask/ws", h.AskWS.ServeWs)
	}

	// Operations
	r.Post("/api/reload", h.handleReload)
	r.Get("/api/share/qr", h.handleShareQR)

	return r
}
