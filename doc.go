// Package mdtable renders tabular data as GitHub-Flavored Markdown pipe
// tables.
//
// A table is a [TableData]: row 0 is the header and the remaining rows are
// the body. The central entry points are [Format], [Write] and [Marshal],
// which take a [Kind] selecting the formatter variant:
//
//	res := mdtable.Format(mdtable.GFM, mdtable.TableData{
//		{"A", "BB"},
//		{"x", "y"},
//	})
//	fmt.Println(res.Output)
//
// prints
//
//	| A | BB |
//	| - | -- |
//	| x | y  |
//
// # Column Widths
//
// Every cell is right-padded to the widest cell of its column. Width is
// measured by a [WidthFunc]; the default [CodepointWidth] counts Unicode
// codepoints, so "café" is 4 columns wide. [EastAsianWidth] counts CJK
// wide characters as two columns. Columns are defined by the header:
// cells past the end of the header are not rendered and missing cells
// render empty.
//
// The two steps are exported separately as [ComputeColumnWidths] with
// [ColumnWidths.Max], and [Emit].
//
// # Captions
//
// If the last row has text in its first cell and every other cell is empty,
// it is written as a normal row and followed by a Pandoc-style caption line:
//
//	| H1    | H2 |
//	| ----- | -- |
//	| a     | b  |
//	| Notes |    |
//	: Notes
//
// Use [WithoutCaption] to leave the caption line out.
//
// # Validation
//
// Every [Result] carries a [Log] from [Validate] describing ragged rows and
// cells that will not render cleanly. The log is advisory: formatting never
// fails and never changes because of it.
//
// # Input
//
// [Read] decodes CSV, TSV, JSON, JSON Lines, and YAML into [TableData].
// [FormatSeq] and [FormatChan] collect rows from an iterator or channel.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownKind] — unknown formatter kind
//   - [ErrUnsupportedInput] — unknown input format
//   - [ErrInvalidInput] — input could not be decoded
package mdtable
