package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupipe/edupipe/internal/config"
	"github.com/edupipe/edupipe/internal/logger"
	"github.com/edupipe/edupipe/internal/pipeline"
)

type Server struct {
	cfg      *config.Config
	pipeline pipeline.Pipeline
	logger   logger.Logger
	engine   *gin.Engine
}

// New wires the HTTP routes: upload endpoint, static results mount,
// and a minimal upload form at the root.
func New(cfg *config.Config, pl pipeline.Pipeline, log logger.Logger) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:      cfg,
		pipeline: pl,
		logger:   log,
		engine:   engine,
	}

	engine.GET("/", s.handleIndex)
	engine.GET("/healthz", s.handleHealth)
	engine.POST("/upload", s.handleUpload)
	engine.Static("/results", cfg.Paths.Results)

	return s
}

// Router exposes the gin engine for the http.Server and tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

const indexHTML = `<!doctype html>
<html>
<head><title>Educational Media Pipeline</title></head>
<body>
<h1>Upload a video or PDF</h1>
<form action="/upload" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".mp4,.mov,.avi,.mkv,.pdf">
<button type="submit">Process</button>
</form>
</body>
</html>`

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
