package main

import (
	"log"
	"net/http"

	"github.com/Ko-stant/dungeon-layout-engine/internal/ws"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.GridWidth <= 0 || cfg.GridHeight <= 0 {
		log.Fatalf("invalid grid dimensions %dx%d", cfg.GridWidth, cfg.GridHeight)
	}

	rules, err := loadRules(cfg)
	if err != nil {
		log.Fatalf("failed to load placement rules: %v", err)
	}
	log.Printf("loaded %d placement rules", len(rules))

	start := cfg.ClampStart(cfg.GridWidth, cfg.GridHeight)
	if start != cfg.StartIndex {
		log.Printf("clamped start index %d to %d", cfg.StartIndex, start)
	}

	state := NewDungeonState(rules, start, cfg.CellSpacing, log.Default())
	if _, err := state.Regenerate(cfg.GridWidth, cfg.GridHeight, cfg.Seed); err != nil {
		log.Fatalf("initial generation failed: %v", err)
	}

	hub := ws.NewHub()

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleIndex(state))
	mux.HandleFunc("/layout", handleLayoutJSON(state))
	mux.HandleFunc("/stream", handleStream(state, hub))

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
