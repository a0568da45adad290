// Package ui serves the dashboard: a sidebar of three selectors driving the
// box plot, histogram and scatter chart, with the load-time summary table on
// its own tab. Charts are rendered server-side per request, so every render
// is a pure function of the immutable dataset plus the query parameters.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"covidlens/domain/dataset"
	"covidlens/domain/eda"
	"covidlens/internal"
	"covidlens/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// Server is the dashboard web server.
type Server struct {
	router  *gin.Engine
	log     *internal.Logger
	table   *dataset.Table
	summary *dataset.Summary
	options eda.Options
	notes   template.HTML
}

// NewServer wires the immutable dataset and its summary into the router.
// notesMarkdown may be empty; when present it renders on the Notes panel.
func NewServer(cfg *config.Config, table *dataset.Table, summary *dataset.Summary, notesMarkdown []byte) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	funcMap := template.FuncMap{
		"title": func(s string) string {
			return strings.Title(strings.ReplaceAll(s, "_", " "))
		},
		"fmtFloat": func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to mount static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(staticFS))

	s := &Server{
		router:  router,
		log:     internal.DefaultLogger.Component("Server"),
		table:   table,
		summary: summary,
		options: eda.NewOptions(summary, cfg.Data.GroupCutoff),
	}
	if len(notesMarkdown) > 0 {
		s.notes = template.HTML(markdown.ToHTML(notesMarkdown, nil, nil))
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	charts := s.router.Group("/charts")
	{
		charts.GET("/box", s.handleBoxChart)
		charts.GET("/histogram", s.handleHistogramChart)
		charts.GET("/scatter", s.handleScatterChart)
	}

	api := s.router.Group("/api")
	{
		api.GET("/selectors", s.handleSelectors)
		api.GET("/summary", s.handleSummaryJSON)
	}
}

// Start runs the server on the given address, blocking until it exits.
func (s *Server) Start(addr string) error {
	s.log.Info("dashboard listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
