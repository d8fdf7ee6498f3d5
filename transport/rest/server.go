package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/footygrid/footygrid-backend/internal/service"
)

// Start serves the game API until the listener fails or the process
// stops.
func Start(logger *slog.Logger, port string, gamePlay service.GamePlayService) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      newRouter(newHandlers(logger, gamePlay)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func newRouter(handlers *handlers) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/healthz", handlers.Health)
	router.Route("/api", func(api chi.Router) {
		api.Post("/game", handlers.StartGame)
		api.Post("/game/{id}/mark", handlers.PlaceMark)
		api.Post("/game/{id}/guess", handlers.Guess)
		api.Post("/game/{id}/skip", handlers.Skip)
		api.Get("/categories/{type}", handlers.CategoryOptions)
		api.Get("/players", handlers.SearchPlayers)
	})

	return router
}
