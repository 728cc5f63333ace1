// Package server exposes the habit store and the scheduling/streak engine
// over an HTTP JSON API, for clients that sync through a shared backend
// instead of the local CLI.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/mrosales/habitd/internal/storage"
)

// Router builds the chi router with the standard middleware stack and all
// /api/v1 routes.
func Router(store storage.Provider, allowedOrigins []string) http.Handler {
	api := NewAPI(store)
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
	})
	r.Use(corsMiddleware.Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/habits", api.ListHabits)
		r.Post("/habits", api.CreateHabit)
		r.Get("/habits/{habitID}", api.GetHabit)
		r.Put("/habits/{habitID}", api.UpdateHabit)
		r.Delete("/habits/{habitID}", api.DeleteHabit)
		r.Post("/habits/{habitID}/restore", api.RestoreHabit)
		r.Post("/habits/{habitID}/toggle", api.ToggleHabit)
		r.Get("/habits/{habitID}/due", api.HabitDue)

		r.Get("/today", api.Today)
		r.Get("/stats", api.Stats)
	})

	return r
}

// ListenAndServe runs the API server until the listener fails.
func ListenAndServe(addr string, store storage.Provider, allowedOrigins []string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(store, allowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
