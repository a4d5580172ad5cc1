// Package api provides the HTTP API server and handlers for the Shelfmark application.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shelfmarkapp/shelfmark-server/internal/http/response"
	"github.com/shelfmarkapp/shelfmark-server/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	authService  *service.AuthService
	bookService  *service.BookService
	userService  *service.UserService
	loginLimiter *RateLimiter
	router       *chi.Mux
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(authService *service.AuthService, bookService *service.BookService, userService *service.UserService, logger *slog.Logger) *Server {
	s := &Server{
		authService: authService,
		bookService: bookService,
		userService: userService,
		// Login attempts per client IP: 10 per minute with a burst of 5.
		loginLimiter: NewRateLimiter(10, time.Minute, 5),
		router:       chi.NewRouter(),
		logger:       logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background resources owned by the server.
func (s *Server) Close() {
	s.loginLimiter.Stop()
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
}

// setupRoutes configures all HTTP routes.
//
// Catalogue and account mutations are deliberately public; only the token
// endpoint and /users/me involve credentials. Tightening the write routes
// is an open item.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// Login (rate limited by client IP).
	s.router.With(RateLimitMiddleware(s.loginLimiter, s.logger)).
		Post("/token", s.handleToken)

	s.router.Route("/users", func(r chi.Router) {
		r.Post("/", s.handleCreateUser)

		r.With(s.requireAuth).Get("/me", s.handleGetCurrentUser)

		r.Route("/{userID}/books/{bookID}", func(r chi.Router) {
			r.Post("/", s.handleAddBookToUser)
			r.Get("/", s.handleIsBookInUserList)
			r.Delete("/", s.handleRemoveBookFromUser)
		})
	})

	s.router.Route("/books", func(r chi.Router) {
		r.Get("/", s.handleListBooks)
		r.Post("/", s.handleCreateBook)
		r.Get("/search/", s.handleSearchBooks)
		r.Get("/{bookID}", s.handleGetBook)
		r.Put("/{bookID}", s.handleUpdateBook)
		r.Delete("/{bookID}", s.handleDeleteBook)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
