// Package http provides the JSON-over-HTTP surface of the service: service
// metadata, query submission, health and knowledge file listing.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryderstorm/askdocs"
)

// shutdownTimeout bounds graceful shutdown once the context is canceled.
const shutdownTimeout = 5 * time.Second

// Server serves the askdocs HTTP API. It holds only read-only state and is
// safe for concurrent request handling.
type Server struct {
	service      *askdocs.QueryService
	registry     askdocs.Registry
	knowledgeDir string
	version      string
	logger       *slog.Logger
	router       *gin.Engine
}

// NewServer creates a Server. A nil logger falls back to slog.Default().
func NewServer(service *askdocs.QueryService, registry askdocs.Registry, knowledgeDir, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		service:      service,
		registry:     registry,
		knowledgeDir: knowledgeDir,
		version:      version,
		logger:       logger,
	}
	s.buildRouter()
	return s
}

func (s *Server) buildRouter() {
	router := gin.New()
	router.Use(RecoveryMiddleware(s.logger))
	router.Use(LoggerMiddleware(s.logger))

	router.GET("/", s.handleRoot)
	router.POST("/query", s.handleQuery)
	router.GET("/health", s.handleHealth)
	router.GET("/files", s.handleFiles)

	s.router = router
}

// Handler returns the root HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // delegate calls are long-running
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("server started", "addr", addr, "version", s.version)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// queryRequest is the POST /query body.
type queryRequest struct {
	Query string `json:"query"`
}

// errorResponse is the non-2xx body: a redacted summary whose ID correlates
// with a full server-side log entry.
type errorResponse struct {
	ErrorID string `json:"error_id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":         "askdocs knowledge API",
		"version":         s.version,
		"available_files": s.listFiles(c.Request.Context()),
		"endpoints": gin.H{
			"POST /query": "Submit a query to the knowledge base",
			"GET /health": "Health check endpoint",
			"GET /files":  "List available knowledge files",
		},
	})
}

func (s *Server) handleQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		env := s.service.Answer(c.Request.Context(), "")
		c.JSON(http.StatusBadRequest, errorResponse{
			ErrorID: env.Err.ID,
			Message: "request body must be JSON with a string \"query\" field",
			Type:    env.Err.Kind,
		})
		return
	}

	env := s.service.Answer(c.Request.Context(), req.Query)
	if env.Status == askdocs.StatusError {
		c.JSON(env.Err.Code, errorResponse{
			ErrorID: env.Err.ID,
			Message: env.Err.Message,
			Type:    env.Err.Kind,
		})
		return
	}

	c.JSON(http.StatusOK, env)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                "healthy",
		"knowledge_files_count": len(s.listFiles(c.Request.Context())),
		"agent_initialized":     s.service != nil,
	})
}

func (s *Server) handleFiles(c *gin.Context) {
	files := s.listFiles(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"available_files":     files,
		"count":               len(files),
		"knowledge_directory": s.knowledgeDir,
	})
}

// listFiles returns the current registry listing, degraded to an empty list
// on failure. Listing problems never surface to API callers.
func (s *Server) listFiles(ctx context.Context) []string {
	files, err := s.registry.Files(ctx)
	if err != nil || files == nil {
		return []string{}
	}
	return files
}
