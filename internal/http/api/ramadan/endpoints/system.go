package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/ramadan/internal/http/api"
	"github.com/Nixie-Tech-LLC/ramadan/internal/http/api/ramadan/packets"
)

func SystemModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/", api.ResolveEndpoint(root))
		c.GET("/healthz", api.ResolveEndpoint(health))
	})
}

func root(_ *gin.Context) (any, *api.APIError) {
	return packets.MessageResponse{Message: "Salaam World"}, nil
}

func health(_ *gin.Context) (any, *api.APIError) {
	return packets.HealthResponse{Status: "ok"}, nil
}
