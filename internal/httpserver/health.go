package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"campus-task-assistant/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "campus-task-assistant"

	readyCheckTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings every registered dependency.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Dependency down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
	defer cancel()

	deps := make(map[string]string, len(srv.checks))
	ready := true
	for name, p := range srv.checks {
		if err := p.PingContext(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s: %v", name, err)
			deps[name] = "down"
			ready = false
			continue
		}
		deps[name] = "up"
	}

	if !ready {
		response.Unavailable(c, "not ready", deps)
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"dependencies": deps,
		"version":      HealthVersion,
		"service":      ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
