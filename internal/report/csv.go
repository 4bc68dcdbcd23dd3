package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// Export file names
const (
	PlayerStatsFile  = "player_stats.csv"
	PlayerEventsFile = "player_events.csv"
	WorkbookFile     = "player_stats.xlsx"
)

// Delimiter separates CSV fields
const Delimiter = ';'

var (
	statsHeader  = []string{"TEAM", "NUMBER", "NAME", "GAMES PLAYED", "GOALS", "ASSISTS", "PIM"}
	eventsHeader = []string{"DATE", "GROUP", "TYPE", "PLAYER NAME", "PLAYER TEAM", "HOME TEAM", "AWAY TEAM", "GAME ID", "GAME LINK"}
)

// LinkFunc returns the results page of a game
type LinkFunc func(gameID string) string

func newCSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	cw.UseCRLF = true
	return cw
}

func statsRow(p *stats.Player) []string {
	return []string{
		p.Team,
		p.Number,
		p.Name,
		strconv.Itoa(p.GamesPlayed),
		strconv.Itoa(p.Goals),
		strconv.Itoa(p.Assists),
		strconv.Itoa(p.PIM),
	}
}

func eventRow(ev stats.FlatEvent, link LinkFunc) []string {
	return []string{
		ev.Date,
		ev.Group,
		ev.Label(),
		ev.PlayerName,
		ev.PlayerTeam,
		ev.HomeTeam,
		ev.AwayTeam,
		ev.ID,
		gameLink(link, ev.ID),
	}
}

// sortedEvents flattens the players' events into date order
func sortedEvents(players []*stats.Player) []stats.FlatEvent {
	events := stats.Flatten(players)
	stats.SortByDate(events)
	return events
}

// WritePlayerStats writes one row per player, in the order given
func WritePlayerStats(w io.Writer, players []*stats.Player) error {
	cw := newCSVWriter(w)
	if err := cw.Write(statsHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range players {
		if err := cw.Write(statsRow(p)); err != nil {
			return fmt.Errorf("writing player %s: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEvents writes one row per event, sorted by date. Events on the same
// date keep player order.
func WriteEvents(w io.Writer, players []*stats.Player, link LinkFunc) error {
	cw := newCSVWriter(w)
	if err := cw.Write(eventsHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, ev := range sortedEvents(players) {
		if err := cw.Write(eventRow(ev, link)); err != nil {
			return fmt.Errorf("writing event for %s: %w", ev.PlayerName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
