package mdtable

import (
	"errors"
	"fmt"
	"strings"
)

// WarningCode classifies a validation warning.
type WarningCode string

const (
	WarnEmptyTable    WarningCode = "empty-table"
	WarnEmptyHeader   WarningCode = "empty-header"
	WarnRaggedRow     WarningCode = "ragged-row"
	WarnPipeInCell    WarningCode = "pipe-in-cell"
	WarnNewlineInCell WarningCode = "newline-in-cell"
)

// Warning is a single advisory finding about the input table. Row and
// Column are zero-based; Column is -1 for row-level warnings and Row is -1
// for table-level warnings.
type Warning struct {
	Code    WarningCode
	Row     int
	Column  int
	Message string
}

func (w Warning) String() string {
	switch {
	case w.Row < 0:
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	case w.Column < 0:
		return fmt.Sprintf("row %d: %s: %s", w.Row, w.Code, w.Message)
	default:
		return fmt.Sprintf("row %d, column %d: %s: %s", w.Row, w.Column, w.Code, w.Message)
	}
}

// Log is the list of warnings produced by [Validate]. Formatters pass it
// through without inspecting it.
type Log []Warning

// String renders one warning per line.
func (l Log) String() string {
	lines := make([]string, len(l))
	for i, w := range l {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// Err joins the warnings into a single error, or returns nil when the log is
// empty.
func (l Log) Err() error {
	if len(l) == 0 {
		return nil
	}
	errs := make([]error, len(l))
	for i, w := range l {
		errs[i] = errors.New(w.String())
	}
	return errors.Join(errs...)
}

// Validate inspects data for shapes and contents that render poorly as a
// pipe table. It never modifies data.
func Validate(data TableData) Log {
	var log Log
	if data.Empty() {
		return append(log, Warning{Code: WarnEmptyTable, Row: -1, Column: -1, Message: "table has no rows"})
	}
	numCols := len(data[0])
	if numCols == 0 {
		log = append(log, Warning{Code: WarnEmptyHeader, Row: 0, Column: -1, Message: "header row has no cells"})
	}
	for row, cells := range data {
		if row > 0 && len(cells) != numCols {
			log = append(log, Warning{
				Code:    WarnRaggedRow,
				Row:     row,
				Column:  -1,
				Message: fmt.Sprintf("expected %d cells, got %d", numCols, len(cells)),
			})
		}
		for col, cell := range cells {
			if strings.ContainsAny(cell, "\r\n") {
				log = append(log, Warning{Code: WarnNewlineInCell, Row: row, Column: col, Message: "line break splits the table row"})
			}
			if hasUnescapedPipe(cell) {
				log = append(log, Warning{Code: WarnPipeInCell, Row: row, Column: col, Message: "unescaped pipe splits the cell"})
			}
		}
	}
	return log
}

func hasUnescapedPipe(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '|':
			return true
		}
	}
	return false
}
