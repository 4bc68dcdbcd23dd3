package extract

import (
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/scraper"
)

const standardSchedulePage = `
<html><body>
<div class="container">
  <div class="d-lg-flex"><h2>Division 1 Norra, Regular season 2025/2026</h2></div>
  <div class="d-lg-flex"><span>Updated daily</span></div>
</div>
<table class="tblWrapper"><tr><td>
<table class="tblContent">
  <thead>
    <tr><th colspan="6">Schedule and Results</th></tr>
    <tr><th>Round</th><th>Date</th><th>Game</th><th>Result</th><th>Spectators</th><th>Venue</th></tr>
  </thead>
  <tbody>
    <tr>
      <td>1</td><td>2025-09-13 19:00</td>
      <td>Skellefteå AIK (SHL) - Luleå HF</td>
      <td><a href="javascript:openonlinewindow('/Game/Events/1001','')">2-1</a></td>
      <td>5400</td><td>Skellefteå Kraft Arena</td>
    </tr>
    <tr>
      <td>1</td><td>19:30</td>
      <td>Boo HC - Västerås IK</td>
      <td><a href="javascript:openonlinewindow('/Game/Events/1002','')">3-4</a></td>
      <td>800</td><td>Boo Arena</td>
    </tr>
    <tr>
      <td>2</td><td>2025-09-20 15:15</td>
      <td>Luleå HF - Boo HC</td>
      <td>-</td>
      <td></td><td>Coop Norrbotten Arena</td>
    </tr>
    <tr>
      <td>2</td><td>16:00</td>
      <td>Västerås IK - Skellefteå AIK</td>
      <td><a href="/Game/Preview/abc">0-0</a></td>
      <td></td><td>ABB Arena</td>
    </tr>
  </tbody>
</table>
</td></tr></table>
</body></html>`

const combinedSchedulePage = `
<html><body>
<table class="tblContent">
  <tr><th>Date</th><th>Result</th><th></th><th>Spectators</th><th>Venue</th><th>Group</th></tr>
  <tr>
    <td>2025-09-13</td>
    <td>Färjestad BK - Frölunda HC</td>
    <td><a href="javascript:openonlinewindow('/Game/Events/2001','')">3-2</a></td>
    <td>7000</td><td>Löfbergs Arena</td><td>SHL</td>
  </tr>
  <tr>
    <td>18:00</td>
    <td>Brynäs IF - HV71</td>
    <td><a href="javascript:openonlinewindow('/Game/Events/2002','')">1-4</a></td>
    <td>6100</td><td>Monitor ERP Arena</td><td>SHL</td>
  </tr>
</table>
</body></html>`

const lineupPage1001 = `
<html><body>
<h3>Skellefteå AIK (SHL)</h3>
<div class="lineUpPlayer">21. Andersson, Erik</div>
<div class="lineUpPlayer">7.
  Öberg,
  Åsa</div>
<div class="lineUpPlayer">9. Lind, Per</div>
<h3>Luleå HF</h3>
<div class="lineUpPlayer">14. Berg, Olle</div>
<div class="lineUpPlayer">3. Sjöström-Ødegård, Jørgen</div>
<div class="lineUpPlayer">Coach Svensson</div>
</body></html>`

// eventRowsDescending is the play-by-play of game 1001, latest event first
var eventRowsDescending = []EventRow{
	{Time: "59:30", Event: "GK Out", Team: "LUL"},
	{Time: "52:10", Event: "2-1", Team: "SKE", Players: "7. Öberg, Åsa (1) 21. Andersson, Erik 9. Lind, Per"},
	{Time: "48:20", Event: "1 min (Delay of game)", Team: "LUL", Players: "14. Berg, Olle"},
	{Time: "41:00", Event: "5 min (Fighting)", Team: "SKE", Players: "9. Lind, Per"},
	{Time: "33:33", Event: "2 min (Too many men)", Team: "SKE", Players: "Team (served by 9. Lind, Per)"},
	{Time: "25:01", Event: "1-1 (PP1)", Team: "LUL", Players: "3. Sjöström-Ødegård, Jørgen (1) 14. Berg, Olle"},
	{Time: "12:40", Event: "2 min (Hooking)", Team: "LUL", Players: "14. Berg, Olle"},
	{Time: "05:12", Event: "1-0", Team: "SKE", Players: "21. Andersson, Erik (1) 7. Öberg, Åsa"},
}

func eventsPage(rows []EventRow) string {
	var b strings.Builder
	b.WriteString(`<html><body>
<table class="tblContent"><tr><th>Actions</th><th>Shots</th></tr><tr><td>SKE</td><td>31</td></tr></table>
<table class="tblContent">
<tr><th colspan="5">Game Actions</th></tr>
<tr><th>Time</th><th>Event</th><th>Team</th><th>Players</th><th>On ice</th></tr>
<tr><td colspan="5">3rd period</td></tr>
`)
	for _, r := range rows {
		b.WriteString("<tr><td>" + r.Time + "</td><td>" + r.Event + "</td><td>" + r.Team +
			"</td><td>" + r.Players + "</td><td>" + r.OnIce + "</td></tr>\n")
	}
	b.WriteString(`<tr><td>Summary</td><td>2-1</td><td></td><td></td><td></td></tr>
</table></body></html>`)
	return b.String()
}

func reversed(rows []EventRow) []EventRow {
	out := make([]EventRow, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, rows[i])
	}
	return out
}

// fakeFetcher serves pages from memory and records every request
type fakeFetcher struct {
	schedules map[string]string
	lineups   map[string]string
	events    map[string]string
	failures  map[string]error // keyed like calls, e.g. "events:1001"
	calls     []string
}

func (f *fakeFetcher) serve(pages map[string]string, kind, id string) (*goquery.Document, error) {
	f.calls = append(f.calls, kind+":"+id)
	if err, ok := f.failures[kind+":"+id]; ok {
		return nil, err
	}
	page, ok := pages[id]
	if !ok {
		return nil, &scraper.StatusError{URL: kind + "/" + id, StatusCode: http.StatusNotFound}
	}
	return goquery.NewDocumentFromReader(strings.NewReader(page))
}

func (f *fakeFetcher) FetchSchedule(id string) (*goquery.Document, error) {
	return f.serve(f.schedules, "schedule", id)
}

func (f *fakeFetcher) FetchLineups(id string) (*goquery.Document, error) {
	return f.serve(f.lineups, "lineups", id)
}

func (f *fakeFetcher) FetchEvents(id string) (*goquery.Document, error) {
	return f.serve(f.events, "events", id)
}

func mustDocument(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(err)
	}
	return doc
}
