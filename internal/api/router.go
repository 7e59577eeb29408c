package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cardiodash/app"
	"cardiodash/internal"
	"cardiodash/internal/errors"
	"cardiodash/internal/query"
	"cardiodash/internal/report"
)

// Router serves the dashboard data as a JSON API
type Router struct {
	mux     *chi.Mux
	service *app.DashboardService
	logger  *internal.Logger
}

// NewRouter wires the API routes over service
func NewRouter(service *app.DashboardService, logger *internal.Logger) *Router {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelInfo)
	}
	r := &Router{
		mux:     chi.NewRouter(),
		service: service,
		logger:  logger.With("API"),
	}

	r.mux.Use(middleware.RequestID)
	r.mux.Use(middleware.Logger)
	r.mux.Use(middleware.Recoverer)
	r.mux.Use(middleware.Compress(5))

	r.mux.Get("/healthz", r.handleHealth)
	r.mux.Route("/api", func(api chi.Router) {
		api.Get("/options", r.handleOptions)
		api.Get("/summary", r.handleSummary)
		api.Get("/report", r.handleReport)
		api.Get("/export.xlsx", r.handleExport)
	})
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	r.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) handleOptions(w http.ResponseWriter, req *http.Request) {
	choices, err := r.service.Choices(req.Context())
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	r.writeJSON(w, http.StatusOK, choices)
}

func (r *Router) handleSummary(w http.ResponseWriter, req *http.Request) {
	summary, err := r.service.Summarize(req.Context(), query.ParseSelection(req.URL.Query()))
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	r.writeJSON(w, http.StatusOK, summary)
}

func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) {
	format := req.URL.Query().Get("format")
	if format == "" {
		format = "md"
	}
	if format != "md" && format != "html" {
		r.writeError(w, req, errors.InvalidInput(fmt.Sprintf("unsupported report format %q", format)))
		return
	}

	summary, err := r.service.Summarize(req.Context(), query.ParseSelection(req.URL.Query()))
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	if format == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(report.HTML(summary))
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(report.Markdown(summary)))
}

func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) {
	summary, err := r.service.Summarize(req.Context(), query.ParseSelection(req.URL.Query()))
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, summary); err != nil {
		r.writeError(w, req, errors.Wrap(err, "building workbook"))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", report.ExportFilename(time.Now())))
	_, _ = buf.WriteTo(w)
}

func (r *Router) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		r.logger.Warn("encoding response: %v", err)
	}
}

func (r *Router) writeError(w http.ResponseWriter, req *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		r.logger.Error("%s %s: %v", req.Method, req.URL.Path, err)
	}
	r.writeJSON(w, status, map[string]string{"error": err.Error(), "code": errors.GetCode(err)})
}
