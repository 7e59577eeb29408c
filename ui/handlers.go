package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"cardiodash/app"
	"cardiodash/internal/errors"
	"cardiodash/internal/pipeline"
	"cardiodash/internal/query"
	"cardiodash/internal/report"

	"github.com/gin-gonic/gin"
)

type indexPage struct {
	Title       string
	Summary     *pipeline.Summary
	Choices     *app.FilterChoices
	SummaryJSON template.JS
	Query       template.URL
}

type reportPage struct {
	Title string
	Body  template.HTML
	Query template.URL
}

func (s *Server) handleIndex(c *gin.Context) {
	req := query.ParseSelection(c.Request.URL.Query())

	summary, err := s.service.Summarize(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	choices, err := s.service.Choices(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		s.fail(c, errors.Wrap(err, "encoding summary"))
		return
	}

	s.renderTemplate(c, "index.html", indexPage{
		Title:       "Cardiovascular Risk Dashboard",
		Summary:     summary,
		Choices:     choices,
		SummaryJSON: template.JS(payload),
		Query:       template.URL(query.Encode(req).Encode()),
	})
}

func (s *Server) handleReportPage(c *gin.Context) {
	req := query.ParseSelection(c.Request.URL.Query())
	summary, err := s.service.Summarize(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.renderTemplate(c, "report.html", reportPage{
		Title: "Cardiovascular Risk Report",
		Body:  template.HTML(report.HTML(summary)),
		Query: template.URL(query.Encode(req).Encode()),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleOptions(c *gin.Context) {
	choices, err := s.service.Choices(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, choices)
}

func (s *Server) handleSummary(c *gin.Context) {
	summary, err := s.service.Summarize(c.Request.Context(), query.ParseSelection(c.Request.URL.Query()))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleReport(c *gin.Context) {
	format := c.DefaultQuery("format", "md")
	if format != "md" && format != "html" {
		s.fail(c, errors.InvalidInput(fmt.Sprintf("unsupported report format %q", format)))
		return
	}

	summary, err := s.service.Summarize(c.Request.Context(), query.ParseSelection(c.Request.URL.Query()))
	if err != nil {
		s.fail(c, err)
		return
	}
	if format == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", report.HTML(summary))
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(report.Markdown(summary)))
}

func (s *Server) handleExport(c *gin.Context) {
	summary, err := s.service.Summarize(c.Request.Context(), query.ParseSelection(c.Request.URL.Query()))
	if err != nil {
		s.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, summary); err != nil {
		s.fail(c, errors.Wrap(err, "building workbook"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", report.ExportFilename(time.Now())))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (s *Server) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
