package api

import (
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	callerKey       = "caller"
	requestIDHeader = "X-Request-ID"
)

// TokenParser turns a bearer token into the caller it was issued for.
type TokenParser interface {
	Parse(raw string) (domain.Caller, error)
}

// RequestID ensures every request has an id for tracing and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(requestIDKey)
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}

// Authenticate requires a valid "Bearer <token>" header and stores the
// resulting caller on the context.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			writeError(c, domain.ErrUnauthorized)
			return
		}

		caller, err := parser.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			writeError(c, domain.ErrUnauthorized)
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := callerFrom(c).RequireAdmin(); err != nil {
			writeError(c, err)
			return
		}
		c.Next()
	}
}

// callerFrom returns the zero Caller for anonymous requests.
func callerFrom(c *gin.Context) domain.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(domain.Caller); ok {
			return caller
		}
	}
	return domain.Caller{}
}
