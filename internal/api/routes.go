package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caretrip/concierge/internal/config"
	"github.com/caretrip/concierge/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
	config     *config.Config
	logger     *logger.Logger
}

// NewRouter creates a new API router
func NewRouter(handler *Handler, cfg *config.Config, log *logger.Logger) *Router {
	return &Router{
		handler:    handler,
		middleware: NewMiddleware(log),
		config:     cfg,
		logger:     log.Named("api-router"),
	}
}

// Routes returns the API routes
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.Logger)
	router.Use(r.middleware.Recoverer)
	router.Use(r.middleware.CORS(r.config.Server.CORSAllowedOrigins))

	// API routes
	router.Route("/api/v1", func(router chi.Router) {
		// Demo scenario routes
		router.Get("/scenarios", r.handler.GetScenarios)
		router.Get("/scenarios/{id}", r.handler.GetScenarioByID)
		router.Get("/scenarios/{id}/reservation", r.handler.GetScenarioReservation)

		// Demo playback transport
		router.Post("/demo/select", r.handler.SelectScenario)
		router.Post("/demo/pause", r.handler.PausePlayback)
		router.Post("/demo/resume", r.handler.ResumePlayback)
		router.Post("/demo/restart", r.handler.RestartPlayback)
		router.Get("/demo/state", r.handler.GetPlaybackState)

		// WebSocket route
		router.Get("/ws", r.handler.HandleWebSocket)

		// Session routes
		router.Post("/sessions", r.handler.CreateSession)
		router.Get("/sessions/{id}", r.handler.GetSession)
		router.Post("/sessions/{id}/reservation", r.handler.AttachReservation)
		router.Post("/sessions/{id}/messages", r.handler.AppendMessage)
		router.Post("/sessions/{id}/location", r.handler.UpdateLocation)

		// Family helper routes
		router.Post("/helper/create-link", r.handler.CreateHelperLink)
		router.Get("/helper/{linkID}", r.handler.GetHelperSession)
		router.Post("/helper/{linkID}/suggest", r.handler.SendHelperSuggestion)
		router.Get("/helper/{linkID}/seats", r.handler.GetHelperSeats)
		router.Get("/helper/{linkID}/actions", r.handler.GetHelperActions)
		router.Post("/helper/{linkID}/actions/execute", r.handler.ExecuteHelperAction)
		router.Get("/helper/{linkID}/location", r.handler.GetHelperLocation)
		router.Post("/helper/{linkID}/location/refresh", r.handler.RefreshHelperLocation)
		router.Post("/helper/{linkID}/alerts/{alertID}/acknowledge", r.handler.AcknowledgeAlert)

		// Handoff route
		router.Post("/handoff", r.handler.CreateHandoff)

		// Reservation routes
		router.Get("/reservations/lookup", r.handler.LookupReservation)

		// Flight routes
		router.Get("/flights/alternatives", r.handler.GetAlternativeFlights)

		// Airport routes
		router.Get("/airports", r.handler.GetAirports)

		// Health check
		router.Get("/health", r.handler.GetHealth)

		// Contact surface
		router.Get("/contact", r.handler.GetContact)
	})

	return router
}
