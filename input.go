package mdtable

import (
	"fmt"
	"io"
	"strings"
)

// InputFormat names an encoding that [Read] can decode into [TableData].
type InputFormat string

const (
	CSV   InputFormat = "csv"
	TSV   InputFormat = "tsv"
	JSON  InputFormat = "json"
	JSONL InputFormat = "jsonl"
	YAML  InputFormat = "yaml"
)

var inputFormats = []InputFormat{CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f InputFormat) String() string { return string(f) }

// InputFormats returns all supported input formats.
func InputFormats() []InputFormat {
	out := make([]InputFormat, len(inputFormats))
	copy(out, inputFormats)
	return out
}

// ParseInputFormat parses an input format name. "yml" and "ndjson" are
// accepted as aliases.
func ParseInputFormat(s string) (InputFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "yml":
		return YAML, nil
	case "ndjson":
		return JSONL, nil
	}
	for _, f := range inputFormats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedInput, s)
}

// InputFormatForPath guesses the input format from a file extension.
func InputFormatForPath(path string) (InputFormat, bool) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || strings.ContainsAny(path[i:], `/\`) {
		return "", false
	}
	f, err := ParseInputFormat(path[i+1:])
	if err != nil {
		return "", false
	}
	return f, true
}

// ReadOption configures [Read].
type ReadOption func(*readOptions)

type readOptions struct {
	delimiter rune
}

// WithDelimiter sets the CSV field delimiter.
// Default: comma.
func WithDelimiter(r rune) ReadOption {
	return func(o *readOptions) { o.delimiter = r }
}

// Read decodes table data from r in format f.
func Read(r io.Reader, f InputFormat, opts ...ReadOption) (TableData, error) {
	o := readOptions{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}
	switch f {
	case CSV:
		return readCSV(r, o.delimiter)
	case TSV:
		return readTSV(r)
	case JSON:
		return readJSON(r)
	case JSONL:
		return readJSONL(r)
	case YAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, f)
	}
}
