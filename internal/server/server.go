// Package server exposes the classification query interface over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tonerow/forte/internal/config"
	"github.com/tonerow/forte/internal/forte"
	"github.com/tonerow/forte/internal/notename"
)

// Server wires the catalog, logger, and router together. The catalog is
// injected at construction and shared read-only across all requests.
type Server struct {
	cfg     config.Config
	catalog *forte.Catalog
	log     *slog.Logger
	engine  *gin.Engine
	metrics *metrics
}

// New builds the HTTP server. It registers the "pitches" binding rule on
// gin's validator so malformed collections are rejected before a handler
// runs.
func New(cfg config.Config, catalog *forte.Catalog, logger *slog.Logger) *Server {
	gin.SetMode(cfg.Mode)

	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		log:     logger,
		metrics: newMetrics(),
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("pitches", func(fl validator.FieldLevel) bool {
			_, err := notename.ParseCollection(fl.Field().String())
			return err == nil
		})
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	api := engine.Group("/api")
	api.Use(s.observeRequests())
	api.POST("/classify", s.handleClassify)
	api.POST("/normal-order", s.handleNormalOrder)
	api.POST("/prime-form", s.handlePrimeForm)
	api.POST("/invert", s.handleInvert)
	api.POST("/complement", s.handleComplement)
	api.POST("/interval", s.handleInterval)
	api.POST("/subsets", s.handleSubsets)
	api.GET("/catalog/:cardinality", s.handleCatalog)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	s.engine = engine
	return s
}

// Handler returns the root handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then closes the listener.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	srv := &http.Server{Addr: addr, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("shutdown did not drain cleanly", "error", err)
		}
	}()

	s.log.Info("forte server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// observeRequests counts API calls by operation (the final path segment of
// the matched route) and response status.
func (s *Server) observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.metrics.observe(path.Base(c.FullPath()), c.Writer.Status())
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
