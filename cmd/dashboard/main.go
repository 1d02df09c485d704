package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haamee/haamee-api/internal/dashboard"
)

func main() {
	apiURL := flag.String("api", "http://localhost:3001", "base URL of the Haamee API")
	flag.Parse()

	client := dashboard.NewClient(*apiURL)
	program := tea.NewProgram(dashboard.NewModel(client), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard error: %v\n", err)
		os.Exit(1)
	}
}
