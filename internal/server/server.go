// Package server exposes the repeat scan over HTTP.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"irepeats/internal/clibase"
)

// RequestIDHeader carries the per-request uuid, which is also the run ID of
// a scan response.
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "request_id"

// Config holds the service defaults. Query parameters override Scan fields
// per request.
type Config struct {
	Scan clibase.Common

	// MaxBody bounds the FASTA request body in bytes.
	MaxBody int64

	// AllowGCS enables the source=gs://... query parameter.
	AllowGCS bool

	// GCSOptions are appended to every storage client.
	GCSOptions []option.ClientOption
}

// NewRouter builds the service routes on r.
func NewRouter(r *gin.Engine, cfg Config) *gin.Engine {
	r.Use(requestID())
	r.GET("/healthz", NewHealthHandler())
	r.GET("/v1/patterns", NewPatternsHandler(cfg))
	r.POST("/v1/scan", NewScanHandler(cfg))
	return r
}

func requestID() func(c *gin.Context) {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// NewHealthHandler reports liveness.
func NewHealthHandler() func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
}
