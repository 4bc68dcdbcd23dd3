package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// TeamStats is one team and its players, in registration order
type TeamStats struct {
	Team    string          `json:"team"`
	Players []*stats.Player `json:"players"`
}

// GroupByTeam groups players by team, keeping the order teams first appear in
func GroupByTeam(players []*stats.Player) []TeamStats {
	var teams []TeamStats
	index := make(map[string]int)
	for _, p := range players {
		i, ok := index[p.Team]
		if !ok {
			i = len(teams)
			index[p.Team] = i
			teams = append(teams, TeamStats{Team: p.Team})
		}
		teams[i].Players = append(teams[i].Players, p)
	}
	return teams
}

// WriteText prints every player's totals and date-ordered events, team by team
func WriteText(w io.Writer, players []*stats.Player, link LinkFunc) error {
	ew := &errWriter{w: w}

	ew.printf("\n==============================\n")
	ew.printf("      FULL PLAYER STATS\n")
	ew.printf("==============================\n\n")

	if len(players) == 0 {
		ew.printf("No players found.\n")
		return ew.err
	}

	for _, team := range GroupByTeam(players) {
		ew.printf("TEAM: %s\n", team.Team)
		ew.printf("%s\n", strings.Repeat("=", 6+len([]rune(team.Team))))

		for _, p := range team.Players {
			ew.printf("\n%2s  %s\n", p.Number, p.Name)
			ew.printf("   Games Played: %d\n", p.GamesPlayed)
			ew.printf("   Goals:        %d\n", p.Goals)
			ew.printf("   Assists:      %d\n", p.Assists)
			ew.printf("   PIM:          %d\n", p.PIM)
			ew.printf("   Events:\n")

			if len(p.Events) == 0 {
				ew.printf("      (no events recorded)\n")
				continue
			}

			events := append([]stats.Event(nil), p.Events...)
			sort.SliceStable(events, func(i, j int) bool {
				return events[i].Date < events[j].Date
			})
			for _, ev := range events {
				ew.printf("      %s  %-8s vs %s / %s  (%s)  [%s]\n",
					ev.Date, textLabel(ev), ev.HomeTeam, ev.AwayTeam, ev.Group, gameLink(link, ev.ID))
			}
		}
		ew.printf("\n\n")
	}

	return ew.err
}

// textLabel pads penalty minutes so event columns line up ("PIM  2")
func textLabel(ev stats.Event) string {
	if ev.Type == stats.EventPenalty {
		return fmt.Sprintf("PIM %2d", ev.Minutes)
	}
	return string(ev.Type)
}

func gameLink(link LinkFunc, gameID string) string {
	if link == nil || gameID == "" {
		return ""
	}
	return link(gameID)
}

// errWriter keeps the first write error so formatting code stays linear
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
