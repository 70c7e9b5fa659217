package http

import (
	"net/http"

	"go.uber.org/zap"

	"drivenpass/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs and returns an HTTP handler that serves the vault
// API. It applies CORS, JSON content-type enforcement, and request logging
// globally, and gates every /credentials and /network route behind bearer
// authentication.
//
// Routes:
//
//	GET  /health               → liveness probe
//	POST /users                → userHandler.Register
//	POST /auth/sign-in         → userHandler.SignIn
//	GET/POST /credentials      → credentialHandler.List / Create   (auth)
//	GET/DELETE /credentials/{id} → credentialHandler.Get / Delete  (auth)
//	GET/POST /network          → networkHandler.List / Create      (auth)
//	GET/DELETE /network/{id}   → networkHandler.Get / Delete       (auth)
func NewRouter(
	userHandler *UserHandler,
	credentialHandler *CredentialHandler,
	networkHandler *NetworkHandler,
	resolver middleware.TokenResolver,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK!"))
	})

	// Public endpoints
	r.Post("/users", userHandler.Register)
	r.Post("/auth/sign-in", userHandler.SignIn)

	// Protected group: requires a valid bearer token with a live session
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(resolver))

		r.Route("/credentials", func(r chi.Router) {
			r.Get("/", credentialHandler.List)
			r.Post("/", credentialHandler.Create)
			r.Get("/{id}", credentialHandler.Get)
			r.Delete("/{id}", credentialHandler.Delete)
		})

		r.Route("/network", func(r chi.Router) {
			r.Get("/", networkHandler.List)
			r.Post("/", networkHandler.Create)
			r.Get("/{id}", networkHandler.Get)
			r.Delete("/{id}", networkHandler.Delete)
		})
	})

	return r
}
