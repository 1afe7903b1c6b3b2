package mdtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownKind      = errors.New("unknown table kind")
	ErrUnsupportedInput = errors.New("unsupported input format")
	ErrInvalidInput     = errors.New("invalid input")
)

// Kind selects a table formatter variant.
type Kind string

const (
	// GFM is the GitHub-Flavored Markdown pipe table.
	GFM Kind = "gfm"
)

var kinds = []Kind{GFM}

var kindAliases = map[string]Kind{
	"github":          GFM,
	"github-flavored": GFM,
	"markdown":        GFM,
	"md":              GFM,
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns all supported formatter kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a kind name. Matching is case-insensitive and accepts a
// few common aliases such as "markdown" and "github".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsSupported reports whether k selects a real formatter.
func IsSupported(k Kind) bool {
	switch k {
	case GFM:
		return true
	default:
		return false
	}
}

// TableData is an ordered list of rows. Row 0 is the header and the
// remaining rows are the body. Rows may have differing lengths.
type TableData [][]string

// Empty reports whether the table has no rows.
func (d TableData) Empty() bool { return len(d) == 0 }

// Header returns row 0, or nil for an empty table.
func (d TableData) Header() []string {
	if len(d) == 0 {
		return nil
	}
	return d[0]
}

// Body returns rows 1..N-1.
func (d TableData) Body() [][]string {
	if len(d) < 2 {
		return nil
	}
	return d[1:]
}

// Result is the output of a [Formatter]: the rendered text and the
// validation log produced for the input.
type Result struct {
	Output   string
	Warnings Log
}

// Formatter renders table data. Formatters are stateless and safe for
// concurrent use.
type Formatter func(TableData) Result

// Option configures a formatter.
type Option func(*options)

type options struct {
	width   WidthFunc
	caption bool
}

func newOptions(opts []Option) options {
	o := options{width: CodepointWidth, caption: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width == nil {
		o.width = CodepointWidth
	}
	return o
}

// WithWidthFunc sets the function used to measure cell display width.
// Default: [CodepointWidth].
func WithWidthFunc(fn WidthFunc) Option {
	return func(o *options) { o.width = fn }
}

// WithoutCaption disables trailing caption-row detection, so the last row
// always renders as a normal body line.
func WithoutCaption() Option {
	return func(o *options) { o.caption = false }
}

// NewFormatter returns the formatter for k. Unknown kinds get a no-op
// formatter that returns a zero [Result]; use [IsSupported] to tell them
// apart.
func NewFormatter(k Kind, opts ...Option) Formatter {
	o := newOptions(opts)
	switch k {
	case GFM:
		return func(data TableData) Result {
			return formatGFM(data, o)
		}
	default:
		return noopFormatter
	}
}

func noopFormatter(TableData) Result { return Result{} }

// Format renders data with the formatter selected by k.
func Format(k Kind, data TableData, opts ...Option) Result {
	return NewFormatter(k, opts...)(data)
}

// Write renders data and writes the output to w. The validation log is
// returned even when the write fails. Unknown kinds return ErrUnknownKind.
func Write(w io.Writer, k Kind, data TableData, opts ...Option) (Log, error) {
	if !IsSupported(k) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	res := Format(k, data, opts...)
	if res.Output == "" {
		return res.Warnings, nil
	}
	if _, err := io.WriteString(w, res.Output); err != nil {
		return res.Warnings, err
	}
	return res.Warnings, nil
}

// Marshal renders data and returns the output bytes.
func Marshal(k Kind, data TableData, opts ...Option) ([]byte, Log, error) {
	var buf bytes.Buffer
	log, err := Write(&buf, k, data, opts...)
	if err != nil {
		return nil, log, err
	}
	return buf.Bytes(), log, nil
}
