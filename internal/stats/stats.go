package stats

import (
	"fmt"
	"sort"

	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/parse"
)

// EventType identifies what a player did in a game
type EventType string

const (
	EventGoal    EventType = "GOAL"
	EventAssist  EventType = "ASSIST"
	EventPenalty EventType = "PIM"
	EventPlayed  EventType = "PLAYED"
)

// Game is the metadata copied into every event recorded for one game
type Game struct {
	ID       string `json:"game_id"`
	Date     string `json:"date"`
	Group    string `json:"group"`
	HomeTeam string `json:"home"`
	AwayTeam string `json:"away"`
}

// Event is one entry in a player's event log
type Event struct {
	Type    EventType `json:"type"`
	Minutes int       `json:"minutes,omitempty"`
	Game
}

// Label is the event type as exported, with penalty minutes appended ("PIM 2")
func (e Event) Label() string {
	if e.Type == EventPenalty {
		return fmt.Sprintf("%s %d", e.Type, e.Minutes)
	}
	return string(e.Type)
}

// Player is the cumulative record of one player on one team
type Player struct {
	Team        string  `json:"team"`
	Name        string  `json:"name"`
	Number      string  `json:"number"`
	GamesPlayed int     `json:"games_played"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	PIM         int     `json:"pim"`
	Events      []Event `json:"events"`
}

// FlatEvent is an event together with the player it was recorded for
type FlatEvent struct {
	Event
	PlayerName string `json:"player_name"`
	PlayerTeam string `json:"player_team"`
}

// Flatten lists the events of players in player order, then insertion order
func Flatten(players []*Player) []FlatEvent {
	var events []FlatEvent
	for _, p := range players {
		for _, ev := range p.Events {
			events = append(events, FlatEvent{Event: ev, PlayerName: p.Name, PlayerTeam: p.Team})
		}
	}
	return events
}

// SortByDate orders events by date string, ascending. Events on the same date
// keep their relative order.
func SortByDate(events []FlatEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}

// Points returns goals plus assists
func (p *Player) Points() int {
	return p.Goals + p.Assists
}

type playerKey struct {
	team   string
	number string
	name   string
}

// Registry maps team → player → stats. Teams and players keep insertion order.
type Registry struct {
	teams   []string
	rosters map[string][]*Player
	index   map[playerKey]*Player
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		rosters: make(map[string][]*Player),
		index:   make(map[playerKey]*Player),
	}
}

// Ensure returns the player identified by team, jersey number and name,
// creating a zero-valued record on first reference.
func (r *Registry) Ensure(team, name, number string) *Player {
	number = parse.NormalizeNumber(number)
	key := playerKey{team: team, number: number, name: name}
	if p, ok := r.index[key]; ok {
		return p
	}

	if _, ok := r.rosters[team]; !ok {
		r.teams = append(r.teams, team)
		r.rosters[team] = nil
	}

	p := &Player{Team: team, Name: name, Number: number}
	r.index[key] = p
	r.rosters[team] = append(r.rosters[team], p)

	logger.Debug("Adding player", logger.Fields{
		"team":   team,
		"name":   name,
		"number": number,
	})
	return p
}

// Lookup returns an existing player without creating one
func (r *Registry) Lookup(team, name, number string) (*Player, bool) {
	p, ok := r.index[playerKey{team: team, number: parse.NormalizeNumber(number), name: name}]
	return p, ok
}

// RecordGamePlayed counts a lineup appearance
func (r *Registry) RecordGamePlayed(team, name, number string, game Game) {
	p := r.Ensure(team, name, number)
	p.GamesPlayed++
	p.Events = append(p.Events, Event{Type: EventPlayed, Game: game})
}

// RecordGoal credits a goal
func (r *Registry) RecordGoal(team, name, number string, game Game) {
	p := r.Ensure(team, name, number)
	p.Goals++
	p.Events = append(p.Events, Event{Type: EventGoal, Game: game})
}

// RecordAssist credits an assist
func (r *Registry) RecordAssist(team, name, number string, game Game) {
	p := r.Ensure(team, name, number)
	p.Assists++
	p.Events = append(p.Events, Event{Type: EventAssist, Game: game})
}

// RecordPenalty adds penalty minutes
func (r *Registry) RecordPenalty(team, name, number string, minutes int, game Game) {
	p := r.Ensure(team, name, number)
	p.PIM += minutes
	p.Events = append(p.Events, Event{Type: EventPenalty, Minutes: minutes, Game: game})
}

// Teams returns team names in the order they were first registered
func (r *Registry) Teams() []string {
	return append([]string(nil), r.teams...)
}

// Players returns every player, grouped by team in registration order
func (r *Registry) Players() []*Player {
	players := make([]*Player, 0, len(r.index))
	for _, team := range r.teams {
		players = append(players, r.rosters[team]...)
	}
	return players
}

// Events flattens the event logs of every player
func (r *Registry) Events() []FlatEvent {
	return Flatten(r.Players())
}

// Len returns the number of players
func (r *Registry) Len() int {
	return len(r.index)
}
