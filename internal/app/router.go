package app

import (
	"github.com/avc-dev/bookmarks/internal/config"
	"github.com/avc-dev/bookmarks/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps dependencies, cfg *config.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(deps.responder.Recover)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS)

	if cfg.RateLimit.RPS > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
		r.Use(middleware.RateLimit(limiter, logger))
	}

	// Auth - проверяется для любого пути и метода
	r.Use(deps.auth.RequireToken)

	// Routes
	r.Get("/bookmarks", deps.handler.ListBookmarks)
	r.Post("/bookmarks", deps.handler.CreateBookmark)
	r.Get("/bookmarks/{id}", deps.handler.GetBookmark)
	r.Delete("/bookmarks/{id}", deps.handler.DeleteBookmark)

	return r
}
