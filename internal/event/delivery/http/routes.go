package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	events := rg.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/search", h.Search)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
