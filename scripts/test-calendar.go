package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/hockey-stats/internal/calendar"
	"github.com/pfrederiksen/hockey-stats/internal/extract"
	"github.com/pfrederiksen/hockey-stats/internal/scraper"
)

func main() {
	sc := scraper.New("", 0)

	// Sample games in both schedule layouts: with and without a face-off time
	games := []extract.Game{
		{
			ID:      "1001",
			Date:    "2026-03-14",
			Time:    "15:15",
			Matchup: "Skellefteå AIK (SHL) - Luleå HF",
			Venue:   "Skellefteå Kraft Arena",
			Group:   "SHL",
		},
		{
			ID:      "1002",
			Date:    "2026-03-17",
			Matchup: "Färjestad BK - Frölunda HC",
			Venue:   "Löfbergs Arena",
			Group:   "SHL",
		},
	}

	icsContent := calendar.GenerateBulkICS(games, "Hockey games (test)", sc.GameLink)

	// Write to file (owner read/write only)
	filename := "test-games.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
