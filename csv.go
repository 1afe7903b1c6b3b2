package mdtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

func readCSV(r io.Reader, delimiter rune) (TableData, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	var data TableData
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, CSV, err)
		}
		data = append(data, record)
	}
}
