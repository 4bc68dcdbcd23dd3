package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByRegistry SortOrder = "registry"
	SortByPoints   SortOrder = "points"
	SortByGoals    SortOrder = "goals"
	SortByPIM      SortOrder = "pim"
	SortByName     SortOrder = "name"
)

// Valid reports whether o is a known sort order
func (o SortOrder) Valid() bool {
	switch o {
	case SortByRegistry, SortByPoints, SortByGoals, SortByPIM, SortByName:
		return true
	}
	return false
}

// sortPlayers orders players within their team; team order is always the
// order teams were first seen. SortByRegistry leaves players untouched.
func sortPlayers(players []*stats.Player, order SortOrder) {
	if order == SortByRegistry || order == "" {
		return
	}

	teamRank := make(map[string]int)
	for _, p := range players {
		if _, ok := teamRank[p.Team]; !ok {
			teamRank[p.Team] = len(teamRank)
		}
	}

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Team != b.Team {
			return teamRank[a.Team] < teamRank[b.Team]
		}
		return comparePlayers(a, b, order)
	})
}

// comparePlayers returns true if a should come before b. Statistic orders
// are descending and fall back to name.
func comparePlayers(a, b *stats.Player, order SortOrder) bool {
	switch order {
	case SortByPoints:
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
	case SortByGoals:
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
	case SortByPIM:
		if a.PIM != b.PIM {
			return a.PIM > b.PIM
		}
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
