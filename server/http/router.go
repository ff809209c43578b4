package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	compareHnd "github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/handler"
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/config"
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/middleware"
	"github.com/wtravers1/duplicate-taxpayer-detection/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	// main endpoint: two report uploads in, styled workbook out
	r.Post("/compare", compareHnd.Compare(cfg, logger))

	return r
}
