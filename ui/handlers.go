package ui

import (
	"net/http"

	"covidlens/adapters/echarts"
	"covidlens/domain/core"
	"covidlens/domain/dataset"
	"covidlens/domain/eda"
	"covidlens/internal/analysis"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"dataset":     s.table.ID.String(),
		"fingerprint": s.table.Fingerprint().Short(),
		"rows":        s.table.Nrow(),
	})
}

func (s *Server) handleIndex(c *gin.Context) {
	state := s.selection(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    "COVID-19 Mortality Explorer",
		"Dataset":  s.table.Name,
		"Rows":     s.table.Nrow(),
		"Options":  s.options,
		"State":    state,
		"Columns":  s.summary.Columns,
		"Profiles": s.profileRows(),
		"Notes":    s.notes,
	})
}

// profileRows orders the numeric profiles by table column order for display.
func (s *Server) profileRows() []dataset.NumericProfile {
	rows := make([]dataset.NumericProfile, 0, len(s.summary.Profiles))
	for _, col := range s.summary.Columns {
		if p, ok := s.summary.Profiles[col.Name]; ok {
			rows = append(rows, p)
		}
	}
	return rows
}

// handleSelectors serves the option sets and the chart dependency registry
// the client uses to decide which charts to refresh on a selector change.
func (s *Server) handleSelectors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options": s.options,
		"state":   s.selection(c),
	})
}

func (s *Server) handleSummaryJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.summary)
}

func (s *Server) handleBoxChart(c *gin.Context) {
	state := s.selection(c)
	renderID := core.NewRenderID()
	s.log.Debug("render %s box variable=%s group=%s", renderID, state.Variable, state.Group)

	geoms, err := analysis.BoxStats(s.table, state.Variable, state.Group)
	if err != nil {
		s.renderChartError(c, "box plot", err)
		return
	}
	chart := echarts.NewBoxPlot(state.Variable, state.Group, geoms)
	if err := chart.Render(c.Writer); err != nil {
		s.log.Error("render %s box: %v", renderID, err)
	}
}

func (s *Server) handleHistogramChart(c *gin.Context) {
	state := s.selection(c)
	renderID := core.NewRenderID()
	s.log.Debug("render %s histogram variable=%s group=%s", renderID, state.Variable, state.Group)

	h, err := analysis.ComputeHistogram(s.table, state.Variable, state.Group)
	if err != nil {
		s.renderChartError(c, "histogram", err)
		return
	}
	chart := echarts.NewHistogram(state.Variable, state.Group, h)
	if err := chart.Render(c.Writer); err != nil {
		s.log.Error("render %s histogram: %v", renderID, err)
	}
}

func (s *Server) handleScatterChart(c *gin.Context) {
	state := s.selection(c)
	renderID := core.NewRenderID()
	s.log.Debug("render %s scatter variable=%s size=%s group=%s", renderID, state.Variable, state.Size, state.Group)

	data, err := analysis.ComputeScatter(s.table, state.Variable, state.Size, state.Group)
	if err != nil {
		s.renderChartError(c, "scatter plot", err)
		return
	}
	chart := echarts.NewScatter(data, state.Group.String())
	if err := chart.Render(c.Writer); err != nil {
		s.log.Error("render %s scatter: %v", renderID, err)
	}
}

// selection reads selector values from the query string, falling back to the
// first option of each control for anything missing or unknown.
func (s *Server) selection(c *gin.Context) eda.State {
	state := eda.DefaultState(s.options)

	if g := c.Query("group"); g != "" && containsKey(s.options.Group, core.ColumnKey(g)) {
		state.Group = core.ColumnKey(g)
	}
	if v := c.Query("variable"); v != "" && eda.IsVariable(core.ColumnKey(v)) {
		state.Variable = core.ColumnKey(v)
	}
	if sz := c.Query("size"); sz != "" && eda.IsVariable(core.ColumnKey(sz)) {
		state.Size = core.ColumnKey(sz)
	}
	return state
}

func containsKey(keys []core.ColumnKey, key core.ColumnKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// renderChartError shows a degenerate-input failure inside the one chart
// panel that hit it; the rest of the dashboard stays usable.
func (s *Server) renderChartError(c *gin.Context, chart string, err error) {
	s.log.Warn("%s render failed: %v", chart, err)
	c.HTML(http.StatusOK, "chart_error.html", gin.H{
		"Chart": chart,
		"Error": err.Error(),
	})
}
