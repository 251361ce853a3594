package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/platform/metrics"
)

// setupRouter creates the router with its middleware chain and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(metrics.InstrumentHandler)

	indexHandler := api.NewIndexHandler()
	authHandler := api.NewAuthHandler(app.authService)
	projectHandler := api.NewProjectHandler(app.projectService)
	taskHandler := api.NewTaskHandler(app.taskService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authService)

	r.Get("/", api.Handler(indexHandler.Welcome))
	r.Get("/health", api.Handler(indexHandler.Health))
	r.Method(http.MethodGet, metrics.Path, metrics.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", api.Handler(authHandler.Register))
		r.Post("/login", api.Handler(authHandler.Login))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", api.Handler(projectHandler.Index))
			r.Post("/", api.Handler(projectHandler.Create))
			r.Patch("/{id}", api.Handler(projectHandler.Update))
			r.Delete("/{id}", api.Handler(projectHandler.Delete))

			r.Get("/{id}/tasks", api.Handler(taskHandler.Index))
			r.Post("/{id}/tasks", api.Handler(taskHandler.Create))
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Patch("/{id}", api.Handler(taskHandler.Update))
			r.Delete("/{id}", api.Handler(taskHandler.Delete))
		})
	})

	return r
}
