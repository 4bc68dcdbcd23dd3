package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
	"github.com/pfrederiksen/hockey-stats/internal/team"
)

// Fetcher retrieves the pages the extractors read
type Fetcher interface {
	FetchSchedule(scheduleID string) (*goquery.Document, error)
	FetchLineups(gameID string) (*goquery.Document, error)
	FetchEvents(gameID string) (*goquery.Document, error)
}

// Game is one row of a schedule that links to a game's results
type Game struct {
	ID      string `json:"game_id"`
	Date    string `json:"date"`
	Time    string `json:"time,omitempty"`
	Matchup string `json:"matchup"`
	Venue   string `json:"venue,omitempty"`
	Group   string `json:"group"`
}

// Extractor feeds scraped pages into a player registry
type Extractor struct {
	fetcher    Fetcher
	registry   *stats.Registry
	normalizer *team.Normalizer
}

// New creates an Extractor. A nil normalizer gets a fresh, empty cache.
func New(fetcher Fetcher, registry *stats.Registry, normalizer *team.Normalizer) *Extractor {
	if normalizer == nil {
		normalizer = team.NewNormalizer(nil)
	}
	return &Extractor{
		fetcher:    fetcher,
		registry:   registry,
		normalizer: normalizer,
	}
}

func (g Game) meta(home, away string) stats.Game {
	return stats.Game{
		ID:       g.ID,
		Date:     g.Date,
		Group:    g.Group,
		HomeTeam: home,
		AwayTeam: away,
	}
}
