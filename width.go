package mdtable

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// WidthFunc measures the display width of a cell in monospace columns.
type WidthFunc func(string) int

// CodepointWidth counts Unicode codepoints, so "café" is 4 columns wide
// even though it is 5 bytes. Wide and combining characters count as one.
func CodepointWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// EastAsianWidth measures width the way terminals render it: East Asian
// wide characters take two columns and combining marks take none.
func EastAsianWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ColumnWidths holds the display width of every cell, split into the header
// row and the body rows. Body[i] describes row i+1 of the table.
type ColumnWidths struct {
	Headers []int
	Body    [][]int
}

// MaxWidths holds one width per header column.
type MaxWidths []int

// ComputeColumnWidths measures every cell of data. The result has the same
// shape as the input. A nil width uses [CodepointWidth].
func ComputeColumnWidths(data TableData, width WidthFunc) ColumnWidths {
	if width == nil {
		width = CodepointWidth
	}
	var cw ColumnWidths
	if len(data) == 0 {
		return cw
	}
	cw.Headers = rowWidths(data[0], width)
	if len(data) > 1 {
		cw.Body = make([][]int, len(data)-1)
		for i, row := range data[1:] {
			cw.Body[i] = rowWidths(row, width)
		}
	}
	return cw
}

func rowWidths(row []string, width WidthFunc) []int {
	widths := make([]int, len(row))
	for i, cell := range row {
		widths[i] = width(cell)
	}
	return widths
}

// Max reduces the widths to one value per column for numCols columns.
// Cells in columns at or beyond numCols are ignored.
func (cw ColumnWidths) Max(numCols int) MaxWidths {
	widths := make(MaxWidths, numCols)
	for i, w := range cw.Headers {
		if i < numCols && w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range cw.Body {
		for i, w := range row {
			if i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// header returns the width of header cell col, or 0 when absent.
func (cw ColumnWidths) header(col int) int {
	if col < len(cw.Headers) {
		return cw.Headers[col]
	}
	return 0
}

// body returns the width of cell col in body row i, or 0 when absent.
func (cw ColumnWidths) body(i, col int) int {
	if i < len(cw.Body) && col < len(cw.Body[i]) {
		return cw.Body[i][col]
	}
	return 0
}
