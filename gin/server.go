// Package gin exposes the analysis and item pipelines over HTTP using
// gin-gonic/gin.
package gin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagefeed"
	"github.com/gin-gonic/gin"
)

// Server timeouts. The write timeout leaves room for a slow fetch followed
// by an external analysis call.
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 90 * time.Second
	IdleTimeout     = 60 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// Server serves the feed API.
type Server struct {
	analyzer  pagefeed.Analyzer
	items     pagefeed.ItemGenerator
	formatter pagefeed.Formatter
	logger    *slog.Logger

	router *gin.Engine
	server *http.Server
}

// NewServer creates a new Server listening on addr.
func NewServer(addr string, analyzer pagefeed.Analyzer, items pagefeed.ItemGenerator, formatter pagefeed.Formatter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		analyzer:  analyzer,
		items:     items,
		formatter: formatter,
		logger:    logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	s.registerRoutes(router)
	s.router = router

	s.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/health", s.handleHealth)

	v1 := router.Group("/api/v1/feeds")
	v1.GET("/analyze", s.handleAnalyze)
	v1.POST("/analyze", s.handleAnalyze)
	v1.GET("/items", s.handleItems)
	v1.POST("/items", s.handleItems)
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze handles GET|POST /api/v1/feeds/analyze.
func (s *Server) handleAnalyze(c *gin.Context) {
	url := param(c, "url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter is required"})
		return
	}

	analysis, err := s.analyzer.Analyze(c.Request.Context(), url)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// handleItems handles GET|POST /api/v1/feeds/items.
func (s *Server) handleItems(c *gin.Context) {
	format, err := pagefeed.ParseFormat(param(c, "format"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	url := param(c, "url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url parameter is required"})
		return
	}

	result, err := s.items.GenerateItems(c.Request.Context(), url, param(c, "selector"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := s.formatter.Format(&buf, format, url, result); err != nil {
		s.writeError(c, err)
		return
	}

	etag := ETag(buf.Bytes())
	c.Header("ETag", etag)
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// writeError writes err as a JSON error body. Validation errors are client
// errors; everything else is reported as a server error.
func (s *Server) writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	switch pagefeed.ErrorCode(err) {
	case pagefeed.EINVALID:
		status = http.StatusBadRequest
	case pagefeed.EINTERNAL:
		s.logger.Error("internal error", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": pagefeed.ErrorMessage(err)})
}

// ETag returns a strong entity tag for payload.
func ETag(payload []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(payload))
}

// param reads a trimmed value from the query string or a posted form.
func param(c *gin.Context, key string) string {
	if v, ok := c.GetQuery(key); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.PostForm(key))
}

// LoggerMiddleware logs one line per request.
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if len(c.Errors) > 0 {
			logger.Warn("HTTP request with errors", append(attrs, "errors", c.Errors.String())...)
			return
		}
		logger.Info("HTTP request", attrs...)
	}
}
