package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/parse"
	"github.com/pfrederiksen/hockey-stats/internal/scraper"
)

// ErrNoScheduleTable is returned when a schedule page has no results table
var ErrNoScheduleTable = errors.New("no schedule table")

var (
	gameLinkPattern = regexp.MustCompile(`/Game/Events/(\d+)`)
	fullDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	timeOnlyPattern = regexp.MustCompile(`^\d{2}:\d{2}`)
)

// Walk fetches a competition's schedule and extracts lineups and then game
// events for every game in it. It returns the games it processed in table
// order. A game page answering with a non-200 status is logged and skipped;
// a missing schedule page or any transport failure ends the walk.
func (e *Extractor) Walk(scheduleID string) ([]Game, error) {
	logger.Info("Collecting scheduled games", logger.Fields{"schedule_id": scheduleID})

	doc, err := e.fetcher.FetchSchedule(scheduleID)
	if err != nil {
		logger.IncrCounter("fetch.failed")
		return nil, fmt.Errorf("fetching schedule %s: %w", scheduleID, err)
	}

	games, err := ParseSchedule(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule %s: %w", scheduleID, err)
	}

	processed := make([]Game, 0, len(games))
	for _, g := range games {
		if _, _, err := parse.SplitMatchup(g.Matchup); err != nil {
			logger.Warn("Skipping game with unreadable matchup", logger.Fields{
				"game_id": g.ID,
				"matchup": g.Matchup,
			})
			logger.IncrCounter("games.skipped")
			continue
		}

		// Lineups first: they register the full team names that event
		// team codes are normalized against.
		logger.Info("Retrieving lineups", logger.Fields{
			"game_id": g.ID,
			"date":    g.Date,
			"matchup": g.Matchup,
		})
		if _, _, err := e.Lineups(g); err != nil {
			if !isPageUnavailable(err) {
				return nil, fmt.Errorf("game %s: %w", g.ID, err)
			}
			logger.Warn("Lineups unavailable", logger.Fields{
				"game_id": g.ID,
				"error":   err.Error(),
			})
		}

		logger.Info("Retrieving game stats", logger.Fields{
			"game_id": g.ID,
			"date":    g.Date,
			"matchup": g.Matchup,
		})
		if err := e.GameEvents(g); err != nil {
			if !isPageUnavailable(err) {
				return nil, fmt.Errorf("game %s: %w", g.ID, err)
			}
			logger.Warn("Game events unavailable", logger.Fields{
				"game_id": g.ID,
				"error":   err.Error(),
			})
		}

		logger.IncrCounter("games.processed")
		processed = append(processed, g)
	}

	return processed, nil
}

// isPageUnavailable reports whether err comes from a page that answered with a
// non-200 status
func isPageUnavailable(err error) bool {
	var statusErr *scraper.StatusError
	return errors.As(err, &statusErr)
}

// ParseSchedule reads the games of a schedule page. Rows without a results
// link are left out; a time-only date cell inherits the last full date above it.
func ParseSchedule(doc *goquery.Document) ([]Game, error) {
	header, data, ok := findScheduleTable(doc)
	if !ok {
		return nil, ErrNoScheduleTable
	}
	if len(data) == 0 {
		return nil, nil
	}

	layout, cols, err := DetectLayout(header, data[0])
	if err != nil {
		return nil, err
	}

	headerGroup := scheduleGroup(doc)
	logger.Debug("Schedule layout", logger.Fields{
		"layout":       string(layout),
		"header":       header,
		"header_group": headerGroup,
	})

	var games []Game
	currentDate := ""

	for _, row := range data {
		var date, clock string
		date, clock, currentDate = resolveDate(cellAt(row, cols.Date).Text, currentDate)

		result := cellAt(row, cols.Result)
		if result.Href == "" {
			logger.Debug("Skipping schedule row without results link", logger.Fields{
				"date":    date,
				"matchup": cellAt(row, cols.Matchup).Text,
			})
			continue
		}

		m := gameLinkPattern.FindStringSubmatch(result.Href)
		if m == nil {
			logger.Warn("Could not extract game ID", logger.Fields{"href": result.Href})
			logger.IncrCounter("games.skipped")
			continue
		}

		group := headerGroup
		if cols.Group >= 0 {
			group = cellAt(row, cols.Group).Text
		}

		games = append(games, Game{
			ID:      m[1],
			Date:    date,
			Time:    clock,
			Matchup: cellAt(row, cols.Matchup).Text,
			Venue:   cellAt(row, cols.Venue).Text,
			Group:   group,
		})
	}

	return games, nil
}

// resolveDate interprets a date cell. "2025-09-13 19:00" sets the current
// date; "19:00" reuses it.
func resolveDate(text, current string) (date, clock, newCurrent string) {
	fields := strings.Fields(text)
	switch {
	case fullDatePattern.MatchString(text):
		date = text[:len("2006-01-02")]
		return date, strings.TrimSpace(text[len(date):]), date
	case timeOnlyPattern.MatchString(text) && current != "":
		return current, fields[0], current
	case len(fields) > 0:
		return fields[0], "", current
	}
	return "", "", current
}

// findScheduleTable returns the first table with both a Date and a Result column
func findScheduleTable(doc *goquery.Document) (header []string, data [][]Cell, ok bool) {
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		h, d := splitHeader(t)
		if columnIndex(h, "Date") >= 0 && columnIndex(h, "Result") >= 0 {
			header, data, ok = h, d, true
			return false
		}
		return true
	})
	return header, data, ok
}

// scheduleGroup reads the competition name shown above the table, up to the
// first comma ("SHL, Regular season" → "SHL")
func scheduleGroup(doc *goquery.Document) string {
	sel := doc.Find("div.d-lg-flex:nth-child(1)").First()
	if sel.Length() == 0 {
		return ""
	}
	group, _, _ := strings.Cut(parse.NormalizeText(sel.Text()), ",")
	return strings.TrimSpace(group)
}
