package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sialabs/recruiting-agent/internal/client"
	"sialabs/recruiting-agent/internal/session"
	"sialabs/recruiting-agent/internal/tui"
)

func main() {
	defaultURL := os.Getenv("RECRUITER_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3004"
	}
	apiURL := flag.String("api", defaultURL, "recruiting agent API base URL")
	flag.Parse()

	api := client.New(*apiURL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := api.Health(ctx); err != nil {
		log.Fatalf("❌ API at %s is not reachable: %v", *apiURL, err)
	}

	store := session.NewStore()
	program := tea.NewProgram(tui.NewModel(api, store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("❌ Wizard exited with error: %v", err)
	}
}
