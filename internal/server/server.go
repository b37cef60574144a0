// Package server exposes the assistant over HTTP.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/assistant"
	"github.com/spigell/cv-assistant/internal/profile"
	"github.com/spigell/cv-assistant/internal/scoring"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Listen string
	// Token enables bearer authentication of the API routes when set.
	Token string
	// Seed is the profile new sessions start from unless the request
	// carries one.
	Seed profile.Profile
}

type Server struct {
	cfg       Config
	assistant *assistant.Assistant
	analyzer  *scoring.Analyzer
	sessions  *Registry
	logger    *zap.Logger
	engine    *gin.Engine

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(cfg Config, a *assistant.Assistant, analyzer *scoring.Analyzer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:       cfg,
		assistant: a,
		analyzer:  analyzer,
		sessions:  NewRegistry(),
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.engine = s.routes()

	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	if s.cfg.Token != "" {
		api.Use(s.requireToken())
	}

	api.POST("/sessions", s.createSession)
	api.GET("/sessions/:id", s.getSession)
	api.DELETE("/sessions/:id", s.deleteSession)
	api.POST("/sessions/:id/messages", s.postMessage)
	api.POST("/sessions/:id/reset", s.resetSession)
	api.POST("/drafts/score", s.scoreDraft)
	api.POST("/documents/analyze", s.analyzeDocument)

	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until the context is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Listen))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.Close()
		if ok {
			return fmt.Errorf("serving on %s: %w", s.cfg.Listen, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// Close stops pending document syntheses and waits for them to return.
func (s *Server) Close() {
	s.cancel()
	s.wg.Wait()
}

// Wait blocks until every pending document synthesis has finished.
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(started)),
		)
	}
}

func (s *Server) requireToken() gin.HandlerFunc {
	expected := []byte(s.cfg.Token)
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
