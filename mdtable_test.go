package mdtable_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/mdtable"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

// parseTable parses md with the GFM table extension and returns the number
// of header cells and body rows of the first table found.
func parseTable(t *testing.T, md string) (cols, rows int) {
	t.Helper()
	p := parser.NewWithExtensions(parser.Tables)
	doc := p.Parse([]byte(md))
	found := false
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Table:
			found = true
		case *ast.TableHeader:
			if row := n.GetChildren(); len(row) > 0 {
				cols = len(row[0].GetChildren())
			}
			return ast.SkipChildren
		case *ast.TableBody:
			rows = len(n.GetChildren())
			return ast.SkipChildren
		}
		return ast.GoToNext
	})
	require.True(t, found, "no table in:\n%s", md)
	return cols, rows
}

// ============================================================
// Tests
// ============================================================

func TestParseKind(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    mdtable.Kind
		wantErr require.ErrorAssertionFunc
	}{
		"gfm":      {input: "gfm", want: mdtable.GFM, wantErr: require.NoError},
		"upper":    {input: "GFM", want: mdtable.GFM, wantErr: require.NoError},
		"markdown": {input: "markdown", want: mdtable.GFM, wantErr: require.NoError},
		"github":   {input: " github ", want: mdtable.GFM, wantErr: require.NoError},
		"unknown":  {input: "rst", want: "", wantErr: require.Error},
		"empty":    {input: "", want: "", wantErr: require.Error},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := mdtable.ParseKind(tc.input)
			tc.wantErr(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseKindSentinel(t *testing.T) {
	t.Parallel()
	_, err := mdtable.ParseKind("asciidoc")
	require.ErrorIs(t, err, mdtable.ErrUnknownKind)
	assert.Contains(t, err.Error(), `"asciidoc"`)
}

func TestKinds(t *testing.T) {
	t.Parallel()
	kinds := mdtable.Kinds()
	assert.Equal(t, []mdtable.Kind{mdtable.GFM}, kinds)
	kinds[0] = "mutated"
	assert.Equal(t, mdtable.GFM, mdtable.Kinds()[0])
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "gfm", mdtable.GFM.String())
}

func TestIsSupported(t *testing.T) {
	t.Parallel()
	assert.True(t, mdtable.IsSupported(mdtable.GFM))
	assert.False(t, mdtable.IsSupported("rst"))
	assert.False(t, mdtable.IsSupported(""))
}

func TestNewFormatterUnknownKindIsNoop(t *testing.T) {
	t.Parallel()
	f := mdtable.NewFormatter("rst")
	require.NotNil(t, f)
	res := f(mdtable.TableData{{"A"}, {"x"}})
	assert.Empty(t, res.Output)
	assert.Empty(t, res.Warnings)
}

func TestFormatBasic(t *testing.T) {
	t.Parallel()
	res := mdtable.Format(mdtable.GFM, mdtable.TableData{{"A", "BB"}, {"x", "y"}})
	want := "| A | BB |\n" +
		"| - | -- |\n" +
		"| x | y  |"
	assert.Equal(t, want, res.Output)
	assert.Empty(t, res.Warnings)
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()
	res := mdtable.Format(mdtable.GFM, mdtable.TableData{})
	assert.Empty(t, res.Output)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, mdtable.WarnEmptyTable, res.Warnings[0].Code)
}

func TestFormatNil(t *testing.T) {
	t.Parallel()
	res := mdtable.Format(mdtable.GFM, nil)
	assert.Empty(t, res.Output)
}

func TestFormatHeaderOnly(t *testing.T) {
	t.Parallel()
	res := mdtable.Format(mdtable.GFM, mdtable.TableData{{"Name", "Age"}})
	assert.Equal(t, "| Name | Age |\n| ---- | --- |\n", res.Output)
}

func TestFormatMultibyte(t *testing.T) {
	t.Parallel()
	res := mdtable.Format(mdtable.GFM, mdtable.TableData{
		{"Drink", "Price"},
		{"café", "3"},
		{"tea", "2.50"},
	})
	want := "| Drink | Price |\n" +
		"| ----- | ----- |\n" +
		"| café  | 3     |\n" +
		"| tea   | 2.50  |"
	assert.Equal(t, want, res.Output)
}

func TestFormatEastAsianWidth(t *testing.T) {
	t.Parallel()
	data := mdtable.TableData{{"名前", "x"}, {"ab", "y"}}

	res := mdtable.Format(mdtable.GFM, data)
	assert.Equal(t, "| 名前 | x |\n| -- | - |\n| ab | y |", res.Output)

	res = mdtable.Format(mdtable.GFM, data, mdtable.WithWidthFunc(mdtable.EastAsianWidth))
	assert.Equal(t, "| 名前 | x |\n| ---- | - |\n| ab   | y |", res.Output)
}

func TestFormatNilWidthFuncUsesDefault(t *testing.T) {
	t.Parallel()
	res := mdtable.Format(mdtable.GFM, mdtable.TableData{{"café", "n"}, {"x", "1"}}, mdtable.WithWidthFunc(nil))
	assert.Equal(t, "| café | n |\n| ---- | - |\n| x    | 1 |", res.Output)
}

func TestFormatParsesAsTable(t *testing.T) {
	t.Parallel()
	data := mdtable.TableData{
		{"Name", "Age", "City"},
		{"Alice", "30", "Paris"},
		{"Bob", "25", "Zürich"},
		{"Carol", "41", "Oslo"},
	}
	res := mdtable.Format(mdtable.GFM, data)
	cols, rows := parseTable(t, res.Output)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3, rows)
}

func TestFormatCaptionParsesAsTable(t *testing.T) {
	t.Parallel()
	data := mdtable.TableData{
		{"Name", "Age"},
		{"Alice", "30"},
		{"Bob", "25"},
		{"People", ""},
	}
	res := mdtable.Format(mdtable.GFM, data)
	cols, rows := parseTable(t, res.Output)
	assert.Equal(t, 2, cols)
	// The caption row stays in the table; the caption line ends it.
	assert.Equal(t, 3, rows)
	assert.True(t, strings.HasSuffix(res.Output, "| People |     |\n: People"), res.Output)
}

func TestFormatConcurrent(t *testing.T) {
	t.Parallel()
	f := mdtable.NewFormatter(mdtable.GFM)
	data := mdtable.TableData{{"A", "BB"}, {"x", "y"}}
	want := f(data).Output
	done := make(chan string)
	for range 8 {
		go func() { done <- f(data).Output }()
	}
	for range 8 {
		assert.Equal(t, want, <-done)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, err := mdtable.Write(&buf, mdtable.GFM, mdtable.TableData{{"A", "B"}, {"1"}, {"2", "3"}})
	require.NoError(t, err)
	assert.Equal(t, "| A | B |\n| - | - |\n| 1 |   |\n| 2 | 3 |", buf.String())
	require.Len(t, log, 1)
	assert.Equal(t, mdtable.WarnRaggedRow, log[0].Code)
}

func TestWriteUnknownKind(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_, err := mdtable.Write(&buf, "rst", mdtable.TableData{{"A"}})
	require.ErrorIs(t, err, mdtable.ErrUnknownKind)
	assert.Empty(t, buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	log, err := mdtable.Write(&errWriter{}, mdtable.GFM, mdtable.TableData{{"A|B"}, {"x"}})
	require.ErrorIs(t, err, errWriteFailed)
	require.Len(t, log, 1)
	assert.Equal(t, mdtable.WarnPipeInCell, log[0].Code)
}

func TestWriteEmptyDoesNotWrite(t *testing.T) {
	t.Parallel()
	log, err := mdtable.Write(&errWriter{}, mdtable.GFM, nil)
	require.NoError(t, err)
	assert.Len(t, log, 1)
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	out, log, err := mdtable.Marshal(mdtable.GFM, mdtable.TableData{{"A", "B"}, {"x", "y"}})
	require.NoError(t, err)
	assert.Equal(t, "| A | B |\n| - | - |\n| x | y |", string(out))
	assert.Empty(t, log)
}

func TestMarshalError(t *testing.T) {
	t.Parallel()
	out, _, err := mdtable.Marshal("rst", mdtable.TableData{{"A"}})
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestTableDataAccessors(t *testing.T) {
	t.Parallel()
	var empty mdtable.TableData
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.Header())
	assert.Nil(t, empty.Body())

	data := mdtable.TableData{{"H"}, {"a"}, {"b"}}
	assert.False(t, data.Empty())
	assert.Equal(t, []string{"H"}, data.Header())
	assert.Equal(t, [][]string{{"a"}, {"b"}}, data.Body())
	assert.Nil(t, mdtable.TableData{{"H"}}.Body())
}
