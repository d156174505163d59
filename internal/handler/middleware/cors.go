package middleware

import (
	"log/slog"
	"slices"

	"classroom-reservations/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Location is set on 201 responses and the request id on every one; both have to be readable from the browser.
var requiredExposeHeaders = []string{"Location", RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposeHeaders(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// Bearer tokens travel in a header, so a wildcard origin does not need credentials.
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all_origins", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}

func exposeHeaders(configured []string) []string {
	out := slices.Clone(configured)
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
