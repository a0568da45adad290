package main

import (
	"context"
	"log"

	"covidlens/app"
	"covidlens/internal/config"
	"covidlens/ui"

	"github.com/joho/godotenv"
)

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
	log.Printf("Dataset ready: %s (%d rows, %d columns, fingerprint %s)",
		table.Name, table.Nrow(), len(table.Columns()), table.Fingerprint().Short())

	server, err := ui.NewServer(cfg, table, summary, app.ReadNotes(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("🚀 Starting covidlens dashboard on port %s", cfg.Server.Port)
	log.Fatal(server.Start(":" + cfg.Server.Port))
}
