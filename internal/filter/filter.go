// Package filter narrows what the reports show.
//
// A filter restricts players and games by criteria given on the command line:
//   - Date range (from/to, inclusive)
//   - Teams (substring matching, case-insensitive)
//   - Groups/series (substring matching, case-insensitive)
//
// Filtering never touches the player registry. It returns copies whose
// totals are recomputed from the events that pass, so a date range yields
// the statistics of that period.
//
// Example usage:
//
//	from, to, _ := filter.ParseDateRange("2025-09-01..2025-09-30")
//	f := filter.NewFilter()
//	f.DateFrom, f.DateTo = from, to
//	f.Teams = []string{"Skellefteå"}
//
//	players := f.Players(registry.Players())
//	games := f.Games(games)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/hockey-stats/internal/extract"
	"github.com/pfrederiksen/hockey-stats/internal/parse"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// Filter represents report filtering criteria
type Filter struct {
	// Date range filtering
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Team name filtering (case-insensitive substring match)
	Teams []string `json:"teams,omitempty"`

	// Group/series filtering (case-insensitive substring match)
	Groups []string `json:"groups,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match everything until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Teams:  []string{},
		Groups: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Teams) == 0 &&
		len(f.Groups) == 0
}

// filtersEvents reports whether the filter looks at individual events
func (f *Filter) filtersEvents() bool {
	return f.DateFrom != nil || f.DateTo != nil || len(f.Groups) > 0
}

// MatchesTeam checks a team name against the team criteria
func (f *Filter) MatchesTeam(team string) bool {
	return containsAny(team, f.Teams)
}

// MatchesEvent checks an event against the date and group criteria.
// An event whose date cannot be parsed passes the date check.
func (f *Filter) MatchesEvent(ev stats.Event) bool {
	return f.matchesDate(ev.Date) && containsAny(ev.Group, f.Groups)
}

// MatchesGame checks a scheduled game against all criteria. The team
// criteria match either side of the matchup.
func (f *Filter) MatchesGame(g extract.Game) bool {
	if !f.matchesDate(g.Date) || !containsAny(g.Group, f.Groups) {
		return false
	}
	if len(f.Teams) == 0 {
		return true
	}
	home, away, err := parse.SplitMatchup(g.Matchup)
	if err != nil {
		return containsAny(g.Matchup, f.Teams)
	}
	return f.MatchesTeam(home) || f.MatchesTeam(away)
}

// Players returns the players passing the filter. With date or group
// criteria each returned player is a copy holding only the matching events,
// with totals recounted from them; players left without events are dropped.
// The input players are never modified.
func (f *Filter) Players(players []*stats.Player) []*stats.Player {
	if f.IsEmpty() {
		return players
	}

	var filtered []*stats.Player
	for _, p := range players {
		if !f.MatchesTeam(p.Team) {
			continue
		}
		if !f.filtersEvents() {
			filtered = append(filtered, p)
			continue
		}

		var events []stats.Event
		for _, ev := range p.Events {
			if f.MatchesEvent(ev) {
				events = append(events, ev)
			}
		}
		if len(events) == 0 {
			continue
		}
		filtered = append(filtered, tally(p, events))
	}

	return filtered
}

// Games returns the games passing the filter, in their original order
func (f *Filter) Games(games []extract.Game) []extract.Game {
	if f.IsEmpty() {
		return games
	}

	var filtered []extract.Game
	for _, g := range games {
		if f.MatchesGame(g) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "From: 2025-09-01 | To: 2025-09-30 | Teams: Skellefteå"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format(dateLayout)))
	}

	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format(dateLayout)))
	}

	if len(f.Teams) > 0 {
		parts = append(parts, fmt.Sprintf("Teams: %s", strings.Join(f.Teams, ", ")))
	}

	if len(f.Groups) > 0 {
		parts = append(parts, fmt.Sprintf("Groups: %s", strings.Join(f.Groups, ", ")))
	}

	return strings.Join(parts, " | ")
}

func (f *Filter) matchesDate(date string) bool {
	if f.DateFrom == nil && f.DateTo == nil {
		return true
	}

	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return true
	}

	if f.DateFrom != nil && d.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && d.After(*f.DateTo) {
		return false
	}
	return true
}

// containsAny reports whether s contains one of the needles, ignoring case.
// No needles matches everything.
func containsAny(s string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// tally copies a player with only the given events and totals recounted
func tally(p *stats.Player, events []stats.Event) *stats.Player {
	c := &stats.Player{
		Team:   p.Team,
		Name:   p.Name,
		Number: p.Number,
		Events: events,
	}
	for _, ev := range events {
		switch ev.Type {
		case stats.EventPlayed:
			c.GamesPlayed++
		case stats.EventGoal:
			c.Goals++
		case stats.EventAssist:
			c.Assists++
		case stats.EventPenalty:
			c.PIM += ev.Minutes
		}
	}
	return c
}
