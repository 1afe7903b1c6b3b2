package mdtable

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func readJSONL(r io.Reader) (TableData, error) {
	var data TableData
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		var row []any
		if err := dec.Decode(&row); err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %w", ErrInvalidInput, JSONL, line, err)
		}
		cells, err := jsonCells(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %w", ErrInvalidInput, JSONL, line, err)
		}
		data = append(data, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, JSONL, err)
	}
	return data, nil
}
