package ui

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures request logging, panic recovery and static files
func (s *Server) setupMiddleware() error {
	s.router.Use(gin.Logger(), gin.Recovery())

	staticFS, err := fs.Sub(s.assets, "static")
	if err != nil {
		s.logger.Error("creating static filesystem: %v", err)
		return err
	}
	s.logger.Debug("serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
	return nil
}
