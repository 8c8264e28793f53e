// Package http assembles the gin engine and HTTP server shared by the
// EcoMovil services: common middleware chain, CORS, health and metrics
// endpoints, and graceful shutdown.
package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecomovil/platform/internal/config"
	"github.com/ecomovil/platform/internal/infrastructure/monitoring"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// Server wraps the gin engine and http.Server of one service.
type Server struct {
	engine *gin.Engine
	config *config.Config
	log    logger.Logger
	server *http.Server
}

// NewServer builds the engine with the common middleware chain: recovery,
// request id, access logging, metrics, CORS, and the bearer authentication
// filter. Route registration happens on the returned engine.
func NewServer(cfg *config.Config, log logger.Logger, metrics *monitoring.Metrics, verifier *security.Verifier) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(RecoveryMiddleware(log))
	engine.Use(RequestIDMiddleware())
	engine.Use(LoggingMiddleware(log))
	engine.Use(MetricsMiddleware(metrics))

	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	engine.Use(security.BearerAuthentication(verifier, log))

	// Verification outcome, observed after the filter: a stashed bearer token
	// without a resolved principal means the credential did not verify.
	engine.Use(func(c *gin.Context) {
		if _, ok := security.BearerTokenFrom(c.Request.Context()); ok {
			result := "failure"
			if _, authenticated := security.PrincipalFrom(c.Request.Context()); authenticated {
				result = "success"
			}
			metrics.RecordTokenVerification(result)
		}
		c.Next()
	})

	engine.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Monitoring.PprofEnabled {
		pprof.Register(engine)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "The requested resource was not found"})
	})

	return &Server{
		engine: engine,
		config: cfg,
		log:    log,
	}
}

// Engine exposes the gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM or a listener
// error, then shuts down gracefully.
func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:           s.config.Server.Addr(),
		Handler:        s.engine,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	s.log.Info(context.Background(), "starting HTTP server", logger.Fields{"address": s.server.Addr})

	go s.gracefulShutdown()

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.log.Info(context.Background(), "shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error(context.Background(), "server forced to shutdown", err)
	}
}

// Stop shuts the server down, for callers managing their own lifecycle.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
