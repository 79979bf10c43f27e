package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"github.com/chaos-io/rembg-api/config"
	"github.com/chaos-io/rembg-api/rembg"
)

const Version = "1.0.0"

type Server struct {
	cfg     *config.Config
	remover rembg.Remover
	stats   *Stats
	engine  *gin.Engine
}

func New(cfg *config.Config, remover rembg.Remover, stats *Stats) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg,
		remover: remover,
		stats:   stats,
		engine:  gin.New(),
	}

	s.engine.Use(requestID())
	s.engine.Use(accessLog())
	s.engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "request_id", c.GetString(requestIDKey), "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	s.engine.Use(bodyLimit(cfg.MaxUploadSize))

	s.engine.GET("/", s.home)
	s.engine.GET("/health", s.health)
	s.engine.POST("/remove-background", s.removeBackground)

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return s
}

func (s *Server) Run() error {
	return s.engine.Run(s.cfg.Addr())
}

// Handler 暴露给 httptest 用
func (s *Server) Handler() http.Handler {
	return s.engine
}

const requestIDKey = "request_id"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ksuid.New().String()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// bodyLimit 限制请求体大小，超限在读 body 时报 *http.MaxBytesError
func bodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
