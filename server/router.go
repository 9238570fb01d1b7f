// Package server assembles the HTTP router and runs the API server.
package server

import (
	"net/http"
	"time"

	"moviehub/handlers"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stores are the repositories the route tables serve.
type Stores struct {
	Movies   handlers.MovieStore
	Seasons  handlers.SeasonStore
	Contacts handlers.ContactStore
}

// Options configure the router.
type Options struct {
	FrontendURL      string
	ContactRateLimit int // submissions per minute per client IP, 0 disables
	Started          time.Time
}

// NewRouter builds the full handler: middleware around the /api route
// tables and /metrics.
func NewRouter(stores Stores, opts Options) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := apiRoutes{r}
	registerHealthRoutes(api, handlers.NewHealthHandler(opts.Started))
	registerMovieRoutes(api, handlers.NewMovieHandler(stores.Movies))
	registerSeasonRoutes(api, handlers.NewSeasonHandler(stores.Seasons))
	registerContactRoutes(api, handlers.NewContactHandler(stores.Contacts), contactLimiter(opts.ContactRateLimit))

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	return Recover(RequestLogger(corsHandler(r)))
}

// apiRoutes registers handlers under /api on the root router. The routes sit
// on the root rather than a PathPrefix subrouter so a method mismatch reaches
// the router's MethodNotAllowedHandler.
type apiRoutes struct {
	r *mux.Router
}

func (a apiRoutes) handle(method, path string, h http.Handler) {
	a.r.Handle("/api"+path, Metrics(h)).Methods(method)
}

func (a apiRoutes) handleFunc(method, path string, h http.HandlerFunc) {
	a.handle(method, path, h)
}

func registerHealthRoutes(api apiRoutes, h *handlers.HealthHandler) {
	api.handleFunc("GET", "/health", h.Health)
}

// Static paths are registered ahead of /{id} so they are not taken as ids.
func registerMovieRoutes(api apiRoutes, h *handlers.MovieHandler) {
	api.handleFunc("GET", "/movies/search", h.Search)
	api.handleFunc("GET", "/movies/categories", h.Categories)
	api.handleFunc("GET", "/movies/{id}", h.Get)
	api.handleFunc("GET", "/movies", h.List)
	api.handleFunc("POST", "/movies", h.Create)
	api.handleFunc("PUT", "/movies/{id}", h.Update)
	api.handleFunc("DELETE", "/movies/{id}", h.Delete)
}

func registerSeasonRoutes(api apiRoutes, h *handlers.SeasonHandler) {
	api.handleFunc("GET", "/seasons/search", h.Search)
	api.handleFunc("GET", "/seasons/{id}", h.Get)
	api.handleFunc("GET", "/seasons", h.List)
	api.handleFunc("POST", "/seasons", h.Create)
	api.handleFunc("PUT", "/seasons/{id}", h.Update)
	api.handleFunc("DELETE", "/seasons/{id}", h.Delete)
}

func registerContactRoutes(api apiRoutes, h *handlers.ContactHandler, limit func(http.Handler) http.Handler) {
	api.handleFunc("GET", "/contact/stats", h.Stats)
	api.handleFunc("GET", "/contact/{id}", h.Get)
	api.handleFunc("GET", "/contact", h.List)
	api.handle("POST", "/contact", limit(http.HandlerFunc(h.Submit)))
	api.handleFunc("PUT", "/contact/{id}", h.UpdateStatus)
	api.handleFunc("DELETE", "/contact/{id}", h.Delete)
}

// contactLimiter throttles contact form submissions per client IP.
func contactLimiter(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
		}),
	)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, "Route not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
