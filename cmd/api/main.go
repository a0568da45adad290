// Headless JSON API over the same dataset pipeline as the dashboard, for
// scripted access to the summary and per-group statistics.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"covidlens/app"
	"covidlens/domain/core"
	"covidlens/domain/dataset"
	"covidlens/domain/eda"
	"covidlens/internal/analysis"
	"covidlens/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

type apiServer struct {
	table   *dataset.Table
	summary *dataset.Summary
	options eda.Options
}

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	table, summary, err := app.LoadDataset(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	s := &apiServer{
		table:   table,
		summary: summary,
		options: eda.NewOptions(summary, cfg.Data.GroupCutoff),
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/summary", s.handleSummary)
	r.Get("/api/selectors", s.handleSelectors)
	r.Get("/api/groups", s.handleGroups)
	r.Get("/api/scatter", s.handleScatter)

	addr := ":" + cfg.Server.Port
	log.Printf("🚀 Starting covidlens API on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"dataset":     s.table.ID.String(),
		"fingerprint": s.table.Fingerprint().Short(),
		"rows":        s.table.Nrow(),
	})
}

func (s *apiServer) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.summary)
}

func (s *apiServer) handleSelectors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.options)
}

// handleGroups returns per-group descriptive statistics for a variable,
// the same numbers that annotate the box plot.
func (s *apiServer) handleGroups(w http.ResponseWriter, r *http.Request) {
	variable := core.ColumnKey(r.URL.Query().Get("variable"))
	group := core.ColumnKey(r.URL.Query().Get("group"))

	geoms, err := analysis.BoxStats(s.table, variable, group)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	out := make([]analysis.GroupSummary, len(geoms))
	for i, g := range geoms {
		out[i] = g.Summary
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *apiServer) handleScatter(w http.ResponseWriter, r *http.Request) {
	variable := core.ColumnKey(r.URL.Query().Get("variable"))
	sizeBy := core.ColumnKey(r.URL.Query().Get("size"))
	group := core.ColumnKey(r.URL.Query().Get("group"))

	data, err := analysis.ComputeScatter(s.table, variable, sizeBy, group)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] failed to encode response: %v", err)
	}
}
