package main

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/ramadan/internal/broadcast"
	"github.com/Nixie-Tech-LLC/ramadan/internal/http/api"
	"github.com/Nixie-Tech-LLC/ramadan/internal/http/api/ramadan/endpoints"
	"github.com/Nixie-Tech-LLC/ramadan/internal/http/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, fetcher endpoints.ScheduleFetcher, publisher broadcast.Publisher) {
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	api.MountGroup(r, api.GroupConfig{},
		endpoints.SystemModule(),
		endpoints.RamadanModule(fetcher, publisher),
	)
}
