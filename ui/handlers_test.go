package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"covidlens/domain/eda"
	"covidlens/internal/config"
	"covidlens/internal/profile"
	"covidlens/internal/testkit"
)

func newTestServer(t *testing.T, notes []byte) *Server {
	t.Helper()

	table, err := testkit.ToyTable()
	if err != nil {
		t.Fatalf("fixture clean failed: %v", err)
	}
	summary, err := profile.NewProfiler().Summarize(context.Background(), table)
	if err != nil {
		t.Fatalf("fixture profiling failed: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080", GinMode: "test"},
		Data:   config.DataConfig{File: "toy.csv", GroupCutoff: 11},
	}
	server, err := NewServer(cfg, table, summary, notes)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"sel-group", "sel-variable", "sel-size", "covid_deaths", "year"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	// Summary tab carries the load-time column summary.
	for _, want := range []string{"age_group", "total_deaths", "Missing", "Distinct"} {
		if !strings.Contains(body, want) {
			t.Errorf("statistics tab missing %q", want)
		}
	}
}

func TestIndexNotesPanel(t *testing.T) {
	s := newTestServer(t, []byte("# Methodology\n\nProvisional counts."))
	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "tab-notes") {
		t.Error("notes tab should render when notes markdown is provided")
	}
	if !strings.Contains(body, "<h1") {
		t.Error("notes markdown should render to HTML")
	}

	bare := newTestServer(t, nil)
	if strings.Contains(get(t, bare, "/").Body.String(), "tab-notes") {
		t.Error("notes tab should stay hidden without notes")
	}
}

func TestChartEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	paths := []string{
		"/charts/box?variable=covid_deaths&group=year",
		"/charts/histogram?variable=covid_deaths&group=race",
		"/charts/scatter?variable=total_deaths&size=covid_deaths&group=age_group",
	}
	for _, path := range paths {
		rec := get(t, s, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "echarts") {
			t.Errorf("GET %s should serve an echarts page", path)
		}
	}
}

func TestChartUnknownSelectorFallsBack(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/charts/box?variable=bogus&group=bogus")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET with bogus selectors = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "echarts") {
		t.Error("bogus selector values should fall back to defaults, not error")
	}
}

func TestSelectorsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/api/selectors")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/selectors = %d, want 200", rec.Code)
	}

	var body struct {
		Options eda.Options `json:"options"`
		State   eda.State   `json:"state"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("selectors response is not JSON: %v", err)
	}

	// The toy dataset's low-cardinality columns are group candidates; the
	// death counts (4 distinct each, under the ceiling) qualify too.
	if len(body.Options.Group) == 0 {
		t.Fatal("expected at least one group option")
	}
	if len(body.Options.Variable) != 2 || len(body.Options.Size) != 2 {
		t.Errorf("variable/size must offer exactly the two fixed measures")
	}
	if deps := body.Options.Dependencies[eda.ChartScatter]; len(deps) != 3 {
		t.Errorf("scatter must subscribe to all three selectors, got %v", deps)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"rows":4`) {
		t.Errorf("health should report the row count, got %s", rec.Body.String())
	}
}
