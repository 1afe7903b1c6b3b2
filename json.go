package mdtable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

func readJSON(r io.Reader) (TableData, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var rows [][]any
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, JSON, err)
	}
	return jsonRows(rows)
}

func jsonRows(rows [][]any) (TableData, error) {
	data := make(TableData, len(rows))
	for i, row := range rows {
		cells, err := jsonCells(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %w", ErrInvalidInput, JSON, i, err)
		}
		data[i] = cells
	}
	return data, nil
}

func jsonCells(row []any) ([]string, error) {
	cells := make([]string, len(row))
	for i, v := range row {
		switch v := v.(type) {
		case nil:
		case string:
			cells[i] = v
		case json.Number:
			cells[i] = v.String()
		case bool:
			cells[i] = strconv.FormatBool(v)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			cells[i] = string(b)
		}
	}
	return cells, nil
}
