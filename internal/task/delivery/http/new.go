package http

import (
	"github.com/gin-gonic/gin"

	"campus-task-assistant/internal/task"
	"campus-task-assistant/pkg/log"
)

// Handler is the HTTP delivery layer of the task domain.
type Handler interface {
	Parse(c *gin.Context)
	ParseDate(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
