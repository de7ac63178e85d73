package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

type HTTPMiddleware interface {
	CORS() gin.HandlerFunc
	RequestID() gin.HandlerFunc
}

type httpMiddleware struct {
	corsOrigin string
}

// CORS answers preflight requests and sets the allow headers for corsOrigin ("*" allows any origin).
func (h *httpMiddleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "X-Requested-With", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if h.corsOrigin == "" || h.corsOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{h.corsOrigin}
	}
	return cors.New(cfg)
}

// RequestID reuses the caller's X-Request-ID or generates one, and stores it under RequestIDKey.
func (h *httpMiddleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func NewHTTPMiddleware(corsOrigin string) HTTPMiddleware {
	return &httpMiddleware{
		corsOrigin: corsOrigin,
	}
}
