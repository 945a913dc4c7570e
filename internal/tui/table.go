package tui

import (
	"fmt"
	"strings"
)

// tablePageSize is the number of rows shown per table page.
const tablePageSize = 10

// columnDef describes a single table column.
type columnDef struct {
	Title string
	Width int
	Right bool // right-align (numeric columns)
}

// pageCount returns the total number of pages for totalRows rows.
// Always at least 1.
func pageCount(totalRows int) int {
	if totalRows == 0 {
		return 1
	}
	c := totalRows / tablePageSize
	if totalRows%tablePageSize != 0 {
		c++
	}
	return c
}

// clampPage keeps a page index within bounds for totalRows rows.
func clampPage(page, totalRows int) int {
	pc := pageCount(totalRows)
	if page >= pc {
		return pc - 1
	}
	if page < 0 {
		return 0
	}
	return page
}

// pageBounds returns the [start, end) row range of the given page.
func pageBounds(page, totalRows int) (int, int) {
	start := page * tablePageSize
	if start >= totalRows {
		start = 0
	}
	end := start + tablePageSize
	if end > totalRows {
		end = totalRows
	}
	return start, end
}

// renderTableTitle renders a section title with a page indicator when the
// table spans multiple pages.
func renderTableTitle(title string, page, totalRows int) string {
	pc := pageCount(totalRows)
	if pc > 1 {
		title = fmt.Sprintf("%s  (page %d/%d, ←/→)", title, page+1, pc)
	}
	return " " + StyleTableHeader.Render(title)
}

// renderColumns renders the column header line for the given definitions.
func renderColumns(cols []columnDef) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = pad(c.Title, c.Width, c.Right)
	}
	return " " + StyleTableHeader.Render(strings.Join(cells, "  "))
}

// renderRow renders one data row, alternating row styles for readability.
func renderRow(cols []columnDef, cells []string, alt bool) string {
	padded := make([]string, len(cols))
	for i, c := range cols {
		val := ""
		if i < len(cells) {
			val = cells[i]
		}
		padded[i] = pad(val, c.Width, c.Right)
	}
	style := StyleTableRow
	if alt {
		style = StyleTableRowAlt
	}
	return " " + style.Render(strings.Join(padded, "  "))
}

// pad fits s into width runes, truncating with "…" when too long.
func pad(s string, width int, right bool) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	fill := strings.Repeat(" ", width-len(runes))
	if right {
		return fill + s
	}
	return s + fill
}
