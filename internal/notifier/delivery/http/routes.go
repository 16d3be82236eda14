package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.DELETE("/:id", h.Dismiss)
	}
}
