package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
)

const (
	DefaultBaseURL = "https://stats.swehockey.se"
	UserAgent      = "hockey-stats/1.0 (github.com/pfrederiksen/hockey-stats)"
	Timeout        = 30 * time.Second
)

// StatusError reports a page that answered with something other than 200 OK
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// Scraper fetches pages from the statistics site
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a Scraper for baseURL. An empty baseURL uses DefaultBaseURL and a
// zero timeout uses Timeout.
func New(baseURL string, timeout time.Duration) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = Timeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ScheduleURL returns the schedule-and-results page of a competition
func (s *Scraper) ScheduleURL(scheduleID string) string {
	return fmt.Sprintf("%s/ScheduleAndResults/Schedule/%s", s.baseURL, scheduleID)
}

// LineupsURL returns the lineup page of a game
func (s *Scraper) LineupsURL(gameID string) string {
	return fmt.Sprintf("%s/Game/LineUps/%s", s.baseURL, gameID)
}

// EventsURL returns the play-by-play page of a game
func (s *Scraper) EventsURL(gameID string) string {
	return fmt.Sprintf("%s/Game/Events/%s", s.baseURL, gameID)
}

// GameLink returns the public link to a game's detail page, or "" without an ID
func (s *Scraper) GameLink(gameID string) string {
	if gameID == "" {
		return ""
	}
	return s.EventsURL(gameID)
}

// FetchSchedule fetches the schedule page of a competition
func (s *Scraper) FetchSchedule(scheduleID string) (*goquery.Document, error) {
	defer logger.Time("fetch.schedule")()
	return s.Fetch(s.ScheduleURL(scheduleID))
}

// FetchLineups fetches the lineup page of a game
func (s *Scraper) FetchLineups(gameID string) (*goquery.Document, error) {
	defer logger.Time("fetch.lineups")()
	return s.Fetch(s.LineupsURL(gameID))
}

// FetchEvents fetches the play-by-play page of a game
func (s *Scraper) FetchEvents(gameID string) (*goquery.Document, error) {
	defer logger.Time("fetch.events")()
	return s.Fetch(s.EventsURL(gameID))
}

// Fetch downloads url and parses the body as HTML
func (s *Scraper) Fetch(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	logger.Debug("Fetching page", logger.Fields{"url": url})

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
