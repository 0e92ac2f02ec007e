package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/storelane/storefront-gateway/internal/backend"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/tui"
)

// Order tracking console for support staff. Talks to the commerce
// backend directly, so it needs network access to it but no gateway
// session.
func main() {
	baseURL := os.Getenv("STORELANE_BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:9000"
	}

	orders := order.NewBackendRepository(backend.NewClient(baseURL))
	program := tea.NewProgram(tui.NewModel(orders))
	if _, err := program.Run(); err != nil {
		log.Fatalf("console stopped: %v", err)
	}
}
