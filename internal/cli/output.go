package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/hockey-stats/internal/report"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Schedules   []string           `json:"schedules"`
	GameCount   int                `json:"game_count"`
	PlayerCount int                `json:"player_count"`
	Filter      string             `json:"filter,omitempty"`
	Teams       []report.TeamStats `json:"teams"`
	Files       []string           `json:"files,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, link report.LinkFunc) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, link)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	if result.Teams == nil {
		result.Teams = []report.TeamStats{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, link report.LinkFunc) error {
	var players []*stats.Player
	for _, t := range result.Teams {
		players = append(players, t.Players...)
	}

	if err := report.WriteText(w, players, link); err != nil {
		return err
	}

	if result.Filter != "" {
		fmt.Fprintf(w, "Filter: %s\n", result.Filter)
	}
	for _, path := range result.Files {
		fmt.Fprintf(w, "Wrote %s\n", path)
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d players across %d teams from %d games\n",
		result.PlayerCount, len(result.Teams), result.GameCount)
	return err
}
