// Renders the three dashboard charts to PNG files for offline reports.
//
// Usage:
//
//	export -variable covid_deaths -size total_deaths -group race -out ./out
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"covidlens/adapters/plotpng"
	"covidlens/app"
	"covidlens/domain/core"
	"covidlens/domain/eda"
	"covidlens/internal/analysis"
	"covidlens/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	variable := flag.String("variable", "covid_deaths", "variable to plot")
	sizeBy := flag.String("size", "total_deaths", "scatter size variable")
	group := flag.String("group", "race", "group-by column")
	outDir := flag.String("out", ".", "output directory")
	flag.Parse()

	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !eda.IsVariable(core.ColumnKey(*variable)) || !eda.IsVariable(core.ColumnKey(*sizeBy)) {
		log.Fatalf("variable and size must be one of %v", eda.VariableOptions())
	}

	table, _, err := app.LoadDataset(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	varKey := core.ColumnKey(*variable)
	groupKey := core.ColumnKey(*group)

	boxPath := filepath.Join(*outDir, "box.png")
	if err := plotpng.SaveBox(table, varKey, groupKey, boxPath); err != nil {
		log.Fatalf("Failed to export box plot: %v", err)
	}
	log.Printf("wrote %s", boxPath)

	histPath := filepath.Join(*outDir, "histogram.png")
	if err := plotpng.SaveHistogram(table, varKey, histPath); err != nil {
		log.Fatalf("Failed to export histogram: %v", err)
	}
	log.Printf("wrote %s", histPath)

	scatterData, err := analysis.ComputeScatter(table, varKey, core.ColumnKey(*sizeBy), groupKey)
	if err != nil {
		log.Fatalf("Failed to compute scatter series: %v", err)
	}
	scatterPath := filepath.Join(*outDir, "scatter.png")
	if err := plotpng.SaveScatter(scatterData, scatterPath); err != nil {
		log.Fatalf("Failed to export scatter plot: %v", err)
	}
	log.Printf("wrote %s", scatterPath)
}
