package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/parse"
)

// Cell is the normalized text of a table cell and the target of its first link
type Cell struct {
	Text string
	Href string
}

// HasGameLink reports whether the cell links to a game's results page
func (c Cell) HasGameLink() bool {
	return strings.Contains(c.Href, "/Game/Events/")
}

// ownRows returns the rows of table itself, skipping rows of nested tables
func ownRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(table)
	})
}

// rowCells reads a row's cells, repeating a cell once per spanned column so
// that column indexes line up across rows
func rowCells(tr *goquery.Selection) []Cell {
	var cells []Cell
	tr.ChildrenFiltered("td, th").Each(func(_ int, td *goquery.Selection) {
		cell := Cell{Text: parse.NormalizeText(td.Text())}
		if href, ok := td.Find("a[href]").First().Attr("href"); ok {
			cell.Href = href
		}

		span := 1
		if v, ok := td.Attr("colspan"); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 1 {
				span = n
			}
		}
		for i := 0; i < span; i++ {
			cells = append(cells, cell)
		}
	})
	return cells
}

func isHeaderRow(tr *goquery.Selection) bool {
	if goquery.NodeName(tr.Parent()) == "thead" {
		return true
	}
	cells := tr.ChildrenFiltered("td, th")
	return cells.Length() > 0 && cells.Length() == cells.Filter("th").Length()
}

// tableRows returns the cells of every own row of table
func tableRows(table *goquery.Selection) [][]Cell {
	var rows [][]Cell
	ownRows(table).Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, rowCells(tr))
	})
	return rows
}

// splitHeader separates header rows (inside thead, or made only of th cells)
// from data rows. Column names come from the last header row; a table without
// header rows has no header.
func splitHeader(table *goquery.Selection) (header []string, data [][]Cell) {
	var headerRows [][]Cell
	ownRows(table).Each(func(_ int, tr *goquery.Selection) {
		if isHeaderRow(tr) && len(data) == 0 {
			headerRows = append(headerRows, rowCells(tr))
			return
		}
		data = append(data, rowCells(tr))
	})

	if len(headerRows) == 0 {
		return nil, nil
	}

	for _, c := range headerRows[len(headerRows)-1] {
		header = append(header, c.Text)
	}
	return header, data
}
