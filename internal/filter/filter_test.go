package filter

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/hockey-stats/internal/extract"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

func game(id, date, group string) stats.Game {
	return stats.Game{ID: id, Date: date, Group: group, HomeTeam: "Skellefteå AIK", AwayTeam: "Luleå HF"}
}

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{"empty filter", NewFilter(), true},
		{"filter with date from", &Filter{DateFrom: timePtr(time.Now())}, false},
		{"filter with team", &Filter{Teams: []string{"Boo"}}, false},
		{"filter with group", &Filter{Groups: []string{"SHL"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_MatchesEvent(t *testing.T) {
	sep1 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	sep30 := time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name   string
		filter *Filter
		event  stats.Event
		want   bool
	}{
		{"empty filter matches all", NewFilter(), stats.Event{Game: game("1", "2025-01-01", "SHL")}, true},
		{"inside range", &Filter{DateFrom: &sep1, DateTo: &sep30}, stats.Event{Game: game("1", "2025-09-13", "")}, true},
		{"first day inclusive", &Filter{DateFrom: &sep1}, stats.Event{Game: game("1", "2025-09-01", "")}, true},
		{"last day inclusive", &Filter{DateTo: &sep30}, stats.Event{Game: game("1", "2025-09-30", "")}, true},
		{"before range", &Filter{DateFrom: &sep1}, stats.Event{Game: game("1", "2025-08-31", "")}, false},
		{"after range", &Filter{DateTo: &sep30}, stats.Event{Game: game("1", "2025-10-01", "")}, false},
		{"unparseable date passes", &Filter{DateFrom: &sep1}, stats.Event{Game: game("1", "19:30", "")}, true},
		{"group substring ignores case", &Filter{Groups: []string{"norra"}}, stats.Event{Game: game("1", "", "Division 1 Norra")}, true},
		{"group mismatch", &Filter{Groups: []string{"SHL"}}, stats.Event{Game: game("1", "", "HockeyAllsvenskan")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchesEvent(tt.event); got != tt.want {
				t.Errorf("MatchesEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_MatchesGame(t *testing.T) {
	g := extract.Game{ID: "1", Date: "2025-09-13", Matchup: "Skellefteå AIK (SHL) - Luleå HF", Group: "SHL"}

	tests := []struct {
		name   string
		filter *Filter
		game   extract.Game
		want   bool
	}{
		{"home team", &Filter{Teams: []string{"skellefteå"}}, g, true},
		{"away team", &Filter{Teams: []string{"Luleå"}}, g, true},
		{"parenthetical note is not a team", &Filter{Teams: []string{"SHL"}}, g, false},
		{"other team", &Filter{Teams: []string{"Boo"}}, g, false},
		{"group", &Filter{Groups: []string{"shl"}}, g, true},
		{
			name:   "malformed matchup falls back to text",
			filter: &Filter{Teams: []string{"Boo"}},
			game:   extract.Game{Matchup: "Boo HC vs Almtuna IS"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchesGame(tt.game); got != tt.want {
				t.Errorf("MatchesGame() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Players(t *testing.T) {
	r := stats.NewRegistry()
	sep := game("1", "2025-09-13", "SHL")
	oct := game("2", "2025-10-04", "SHL")

	r.RecordGamePlayed("Skellefteå AIK", "Erik Andersson", "21", sep)
	r.RecordGoal("Skellefteå AIK", "Erik Andersson", "21", sep)
	r.RecordGamePlayed("Skellefteå AIK", "Erik Andersson", "21", oct)
	r.RecordPenalty("Skellefteå AIK", "Erik Andersson", "21", 5, oct)
	r.RecordAssist("Skellefteå AIK", "Erik Andersson", "21", oct)
	r.RecordGamePlayed("Luleå HF", "Olle Berg", "14", sep)

	t.Run("empty filter returns input", func(t *testing.T) {
		players := r.Players()
		got := NewFilter().Players(players)
		if len(got) != 2 || got[0] != players[0] {
			t.Errorf("Players() = %v", got)
		}
	})

	t.Run("team only keeps records", func(t *testing.T) {
		got := (&Filter{Teams: []string{"Luleå"}}).Players(r.Players())
		if len(got) != 1 || got[0].Name != "Olle Berg" {
			t.Fatalf("Players() = %+v", got)
		}
		orig, _ := r.Lookup("Luleå HF", "Olle Berg", "14")
		if got[0] != orig {
			t.Error("team-only filter should not copy players")
		}
	})

	t.Run("date range recounts totals", func(t *testing.T) {
		from, to, err := ParseDateRange("2025-10")
		if err != nil {
			t.Fatal(err)
		}
		got := (&Filter{DateFrom: from, DateTo: to}).Players(r.Players())
		if len(got) != 1 {
			t.Fatalf("Players() returned %d players, want 1 (Berg has no October events)", len(got))
		}
		p := got[0]
		if p.GamesPlayed != 1 || p.Goals != 0 || p.Assists != 1 || p.PIM != 5 || len(p.Events) != 3 {
			t.Errorf("October totals = %+v", p)
		}

		orig, _ := r.Lookup("Skellefteå AIK", "Erik Andersson", "21")
		if orig.GamesPlayed != 2 || orig.Goals != 1 || len(orig.Events) != 5 {
			t.Errorf("registry record modified: %+v", orig)
		}
	})
}

func TestFilter_Games(t *testing.T) {
	games := []extract.Game{
		{ID: "1", Date: "2025-09-13", Matchup: "Boo HC - Västerås IK", Group: "Division 1"},
		{ID: "2", Date: "2025-09-20", Matchup: "Luleå HF - Boo HC", Group: "SHL"},
		{ID: "3", Date: "2025-10-01", Matchup: "Färjestad BK - Frölunda HC", Group: "SHL"},
	}

	got := (&Filter{Teams: []string{"boo"}}).Games(games)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("Games(team boo) = %+v", got)
	}

	to := time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)
	got = (&Filter{DateTo: &to, Groups: []string{"SHL"}}).Games(games)
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Games(SHL, to Sep 30) = %+v", got)
	}

	if got := NewFilter().Games(games); len(got) != 3 {
		t.Errorf("empty filter returned %d games", len(got))
	}
}

func TestFilter_String(t *testing.T) {
	if got := NewFilter().String(); got != "No active filters" {
		t.Errorf("String() = %q", got)
	}

	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	f := &Filter{DateFrom: &from, Teams: []string{"Boo", "Luleå"}, Groups: []string{"SHL"}}
	got := f.String()
	for _, want := range []string{"From: 2025-09-01", "Teams: Boo, Luleå", "Groups: SHL"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "To:") {
		t.Errorf("String() = %q, unexpected To", got)
	}
}
