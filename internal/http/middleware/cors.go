package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AllowedOrigins are the local dev servers of the browser client.
var AllowedOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: AllowedOrigins,
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
