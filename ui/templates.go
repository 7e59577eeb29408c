package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"cardiodash/internal/report"

	"github.com/gin-gonic/gin"
)

var funcMap = template.FuncMap{
	"count": report.FormatCount,
	"bmi":   report.FormatBMI,
	"pct1":  func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"pct2":  func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
	"join":  strings.Join,
	"selected": func(values []string, v string) bool {
		for _, candidate := range values {
			if candidate == v {
				return true
			}
		}
		return false
	},
	"association": report.FormatAssociation,
}

func parseTemplates(assets fs.FS) (*template.Template, error) {
	templates, err := template.New("").Funcs(funcMap).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// renderTemplate renders into a buffer first so a failing template never sends a partial page
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template %s failed: %v", templateName, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("writing template response: %v", err)
	}
}
