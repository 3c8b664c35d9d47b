package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leseraum/leseraum/internal/bible"
	"github.com/leseraum/leseraum/internal/config"
	"github.com/leseraum/leseraum/internal/footnote"
	"github.com/leseraum/leseraum/internal/store"
	"github.com/leseraum/leseraum/internal/tts"
	"github.com/leseraum/leseraum/internal/ui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		os.Exit(1)
	}

	dataset, err := bible.Load(cfg.DatasetCandidates())
	if err != nil {
		log.Printf("Error loading verse dataset: %v", err)
		os.Exit(1)
	}

	// Footnote cleanup is best effort; without rules the raw text shows.
	if rules, err := footnote.LoadRules(cfg.FootnoteCandidates()); err == nil {
		footnote.Apply(dataset, footnote.WordFrequency(dataset), rules)
	}

	// Annotations survive a missing store; the session just won't persist.
	var st *store.Store
	if path := cfg.StorePath(); path != "" {
		if opened, err := store.Open(path); err == nil {
			st = opened
			defer st.Close()
		} else {
			log.Printf("Store unavailable, running in memory: %v", err)
		}
	}
	state := store.LoadState(st)

	resolver := tts.NewResolver(cfg.AudioRoot())

	model := ui.NewModel(dataset, state, resolver, cfg.ReadingWPM())

	// Create the Bubble Tea program with alternate screen
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Run the program
	if _, err := program.Run(); err != nil {
		log.Printf("Error running TUI: %v", err)
		os.Exit(1)
	}
}
