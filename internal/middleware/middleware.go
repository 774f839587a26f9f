package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/pkg/log"
)

type scopeKey struct{}

// Trace puts a trace id on the request context, reusing X-Request-ID when
// the caller sent one, and echoes it back.
func (mw Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := log.WithTraceID(c.Request.Context(), strings.TrimSpace(c.GetHeader(HeaderRequestID)))
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, log.TraceIDFromContext(ctx))
		c.Next()
	}
}

// Scope identifies the caller. Authentication happens upstream; the user id
// is taken from X-User-ID as forwarded by the gateway.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
			ClientIP: c.ClientIP(),
		}
		c.Request = c.Request.WithContext(SetScope(c.Request.Context(), sc))
		c.Next()
	}
}

// AccessLog logs one line per request.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		default:
			mw.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		}
	}
}

func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the caller scope set by Scope, or the zero Scope.
func GetScope(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey{}).(model.Scope)
	return sc
}
