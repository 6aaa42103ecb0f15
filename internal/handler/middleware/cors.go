package middleware

import (
	"log/slog"
	"slices"

	"carseat-rental/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows credentials so the client cookie travels with cross-origin requests.
// The request id header is always exposed so the frontend can quote it in support tickets.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(expose, RequestIDHeader) {
		expose = append(expose, RequestIDHeader)
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_credentials", cfg.AllowCredentials)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
