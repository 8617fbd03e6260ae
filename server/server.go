// SPDX-License-Identifier: MIT
// Package: server
//
// server.go: the Server type, routing, middleware and lifecycle.

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/katalvlaran/neuron/network"
)

// HeaderRequestID carries the per-request id on every response.
const HeaderRequestID = "X-Request-ID"

// ctxRequestID is the gin context key of the request id.
const ctxRequestID = "request_id"

// shutdownTimeout bounds graceful shutdown in Run.
const shutdownTimeout = 5 * time.Second

// Server exposes one network over HTTP. Every access to the network goes
// through mu, so concurrent requests never interleave an Analyze with another
// request's BackPropagate.
type Server struct {
	mu  sync.Mutex
	net *network.Network

	cfg      config
	engine   *gin.Engine
	upgrader websocket.Upgrader
}

// New builds a server around net.
//
// Errors:
//   - ErrNilNetwork.
func New(net *network.Network, opts ...Option) (*Server, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	s := &Server{
		net: net,
		cfg: newConfig(opts...),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())
	r.GET("/healthz", s.healthHandler)

	v1 := r.Group("/v1")
	v1.GET("/model", s.modelHandler)
	v1.POST("/analyze", s.analyzeHandler)
	v1.POST("/train", s.trainHandler)
	v1.POST("/weights/save", s.saveHandler)
	v1.POST("/weights/load", s.loadHandler)
	v1.GET("/canvas", s.canvasHandler)
	s.engine = r

	return s, nil
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.cfg.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// requestID assigns a uuid to every request unless the client sent a valid one.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// accessLog writes one Info record per request.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.cfg.logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "request",
			slog.String("request_id", c.GetString(ctxRequestID)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)))
	}
}

// statusOf maps engine errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, network.ErrInputSize),
		errors.Is(err, network.ErrLabelRange),
		errors.Is(err, network.ErrRate):
		return http.StatusBadRequest
	case errors.Is(err, network.ErrWeightsNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoWeightsPath):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes {"error": ...} with the status derived from err.
func fail(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}
