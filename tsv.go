package mdtable

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func readTSV(r io.Reader) (TableData, error) {
	var data TableData
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		data = append(data, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, TSV, err)
	}
	return data, nil
}
