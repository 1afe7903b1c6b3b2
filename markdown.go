package mdtable

import (
	"strings"
)

// GFM tables: https://github.github.com/gfm/#tables-extension-

func formatGFM(data TableData, o options) Result {
	res := Result{Warnings: Validate(data)}
	if data.Empty() {
		return res
	}
	widths := ComputeColumnWidths(data, o.width)
	res.Output = emit(data, widths, widths.Max(len(data[0])), o.caption)
	return res
}

// Emit renders data as a GitHub-Flavored Markdown pipe table. widths holds
// the per-cell widths from [ComputeColumnWidths] and maxWidths the padded
// width of each header column. An empty table renders as "".
//
// When the last row has text in column 0 only, it is written as a pipe row
// like any other and then repeated as a Pandoc caption line (": text")
// directly below it. The output never ends in a newline.
func Emit(data TableData, widths ColumnWidths, maxWidths MaxWidths) string {
	return emit(data, widths, maxWidths, true)
}

func emit(data TableData, widths ColumnWidths, maxWidths MaxWidths, captions bool) string {
	if data.Empty() {
		return ""
	}
	numRows := len(data)
	numCols := len(data[0])
	if len(maxWidths) < numCols {
		numCols = len(maxWidths)
	}
	maxWidths = maxWidths[:numCols]

	var sb strings.Builder
	writeGFMRow(&sb, data[0], maxWidths, widths.header)
	sb.WriteByte('\n')
	writeGFMSep(&sb, maxWidths)
	sb.WriteByte('\n')

	for row := 1; row < numRows; row++ {
		i := row - 1
		writeGFMRow(&sb, data[row], maxWidths, func(col int) int { return widths.body(i, col) })
		if row < numRows-1 {
			sb.WriteByte('\n')
			continue
		}
		if caption, ok := captionText(data[row], numCols); ok && captions {
			sb.WriteString("\n: ")
			sb.WriteString(caption)
		}
	}
	return sb.String()
}

func writeGFMRow(sb *strings.Builder, cells []string, maxWidths MaxWidths, cellWidth func(col int) int) {
	sb.WriteByte('|')
	for col, width := range maxWidths {
		sb.WriteByte(' ')
		if col < len(cells) {
			sb.WriteString(cells[col])
		}
		if pad := width - cellWidth(col); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" |")
	}
}

func writeGFMSep(sb *strings.Builder, maxWidths MaxWidths) {
	sb.WriteByte('|')
	for _, width := range maxWidths {
		sb.WriteByte(' ')
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}
}

// captionText reports whether row is a caption row: column 0 holds text and
// every other column up to numCols is empty.
func captionText(row []string, numCols int) (string, bool) {
	if numCols == 0 || len(row) == 0 || row[0] == "" {
		return "", false
	}
	for col := 1; col < numCols && col < len(row); col++ {
		if row[col] != "" {
			return "", false
		}
	}
	return row[0], true
}
