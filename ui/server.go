package ui

import (
	"html/template"
	"io/fs"
	"net/http"

	"cardiodash/app"
	"cardiodash/internal"

	"github.com/gin-gonic/gin"
)

// Server is the browser dashboard
type Server struct {
	router    *gin.Engine
	service   *app.DashboardService
	templates *template.Template
	assets    fs.FS
	logger    *internal.Logger
}

// NewServer parses the templates in assets and wires the routes
func NewServer(assets fs.FS, service *app.DashboardService, logger *internal.Logger) (*Server, error) {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelInfo)
	}
	s := &Server{
		router:  gin.New(),
		service: service,
		assets:  assets,
		logger:  logger.With("UI"),
	}

	templates, err := parseTemplates(assets)
	if err != nil {
		return nil, err
	}
	s.templates = templates

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/report", s.handleReportPage)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/options", s.handleOptions)
	api.GET("/summary", s.handleSummary)
	api.GET("/report", s.handleReport)
	api.GET("/export.xlsx", s.handleExport)
}

// Handler exposes the router for an http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}
