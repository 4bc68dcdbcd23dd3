package report

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/hockey-stats/internal/stats"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names
const (
	StatsSheet  = "Stats"
	EventsSheet = "Events"
)

// WriteWorkbook writes an Excel workbook with a Stats sheet and an Events
// sheet holding the same columns as the CSV exports
func WriteWorkbook(w io.Writer, players []*stats.Player, link LinkFunc) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", StatsSheet); err != nil {
		return fmt.Errorf("naming stats sheet: %w", err)
	}
	if _, err := f.NewSheet(EventsSheet); err != nil {
		return fmt.Errorf("creating events sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	statsRows := make([][]interface{}, 0, len(players))
	for _, p := range players {
		statsRows = append(statsRows, []interface{}{
			p.Team, p.Number, p.Name, p.GamesPlayed, p.Goals, p.Assists, p.PIM,
		})
	}
	if err := writeSheet(f, StatsSheet, statsHeader, statsRows, header); err != nil {
		return err
	}

	events := sortedEvents(players)
	eventRows := make([][]interface{}, 0, len(events))
	for _, ev := range events {
		row := eventRow(ev, link)
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		eventRows = append(eventRows, cells)
	}
	if err := writeSheet(f, EventsSheet, eventsHeader, eventRows, header); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// writeSheet streams a header and rows into sheet
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, headerStyle int) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("opening %s sheet: %w", sheet, err)
	}

	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := sw.SetRow("A1", cells, excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cellAddr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cellAddr, row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing %s sheet: %w", sheet, err)
	}
	return nil
}
