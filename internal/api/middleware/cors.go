package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS restricts origins to the configured domains. An empty list
// allows any origin.
func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(allowedDomains) == 0 {
		config.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		config.AllowOrigins = allowedDomains
	}

	return cors.New(config)
}
