// README: Trace id propagation.
package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceHeader = "X-Trace-ID"
	ctxTraceID  = "trace.id"

	// MaxTraceIDLen bounds caller-supplied ids; anything longer is replaced.
	MaxTraceIDLen = 64
)

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Trace reuses the caller's X-Trace-ID when it is a short token of letters, digits,
// '.', '_' or '-'. Otherwise it generates one. The id is echoed on the response.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(TraceHeader)
		if !validTraceID(id) {
			id = uuid.NewString()
		}
		c.Set(ctxTraceID, id)
		c.Header(TraceHeader, id)
		c.Next()
	}
}

func validTraceID(id string) bool {
	return id != "" && len(id) <= MaxTraceIDLen && traceIDPattern.MatchString(id)
}

func TraceID(c *gin.Context) string {
	return c.GetString(ctxTraceID)
}
