package http

import (
	"github.com/gin-gonic/gin"

	"campus-task-assistant/internal/middleware"
)

// RegisterRoutes maps the task and date endpoints onto rg (usually /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.POST("/parse", h.Parse)
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
	}

	dates := rg.Group("/dates", mw.Scope())
	{
		dates.POST("/parse", h.ParseDate)
	}
}
