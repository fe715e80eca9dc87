// Package server exposes the exercise runner over HTTP. A POST body is the
// exercise's stdin and the response body is its stdout.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pk "github.com/Pure-Company/purekata"
	"github.com/Pure-Company/purekata/internal/config"
	"github.com/Pure-Company/purekata/internal/ctxlog"
	"github.com/Pure-Company/purekata/internal/exercise"
)

// Server routes HTTP requests to a runner.
type Server struct {
	runner *exercise.Runner
	cfg    config.Serve
	logger *slog.Logger
	engine *gin.Engine
}

// ExerciseInfo is the JSON listing entry for one exercise.
type ExerciseInfo struct {
	Name    string `json:"name"`
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
	Input   string `json:"input,omitempty"`
}

// New builds the routes. gin's mode is left to the caller.
func New(runner *exercise.Runner, cfg config.Serve, logger *slog.Logger) *Server {
	s := &Server{
		runner: runner,
		cfg:    cfg,
		logger: logger,
		engine: gin.New(),
	}

	s.engine.Use(s.recovery(), s.requestLogger(), cors("*"))
	s.engine.GET("/healthz", s.healthz)
	s.engine.GET("/exercises", s.listExercises)
	s.engine.POST("/exercises/:name", s.runExercise)
	return s
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: s.cfg.Timeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server.listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	s.logger.Info("server.shutdown")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listExercises(c *gin.Context) {
	exs := s.runner.Registry().List(exercise.Topic(c.Query("topic")))
	c.JSON(http.StatusOK, pk.Map(exs, func(ex exercise.Exercise) ExerciseInfo {
		return ExerciseInfo{
			Name:    ex.Name,
			Topic:   string(ex.Topic),
			Summary: ex.Summary,
			Input:   ex.Input,
		}
	}))
}

func (s *Server) runExercise(c *gin.Context) {
	name := c.Param("name")

	// One byte past the limit tells an oversized body from one that fits.
	limit := s.cfg.MaxBodyBytes
	body, err := io.ReadAll(pk.ReadFunc(c.Request.Body.Read).Take(limit + 1))
	if err != nil {
		c.String(http.StatusBadRequest, "read body: %v\n", err)
		return
	}
	if int64(len(body)) > limit {
		c.String(http.StatusRequestEntityTooLarge, "body exceeds %d bytes\n", limit)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.Timeout)
	defer cancel()
	ctx = ctxlog.WithLogger(ctx, s.logger)

	var out bytes.Buffer
	if err := s.runner.Run(ctx, name, bytes.NewReader(body), &out); err != nil {
		c.String(statusFor(err), "%v\n", err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", out.Bytes())
}

func statusFor(err error) int {
	switch {
	case exercise.IsKind(err, exercise.KindUnknownExercise):
		return http.StatusNotFound
	case exercise.IsKind(err, exercise.KindInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http.request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		s.logger.Error("http.panic", "path", c.Request.URL.Path, "panic", fmt.Sprint(rec))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
