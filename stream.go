package mdtable

import (
	"io"
	"iter"
)

// FormatSeq collects rows from seq and renders them with the formatter
// selected by k. The first row is the header. Layout needs every row before
// the first line can be padded, so nothing is rendered until seq is done.
func FormatSeq(k Kind, seq iter.Seq[[]string], opts ...Option) Result {
	return Format(k, collectRows(seq), opts...)
}

// FormatChan renders rows received from ch until it is closed.
// It is a thin wrapper around [FormatSeq].
func FormatChan(k Kind, ch <-chan []string, opts ...Option) Result {
	return FormatSeq(k, chanToIter(ch), opts...)
}

// WriteSeq is the streaming counterpart of [Write].
func WriteSeq(w io.Writer, k Kind, seq iter.Seq[[]string], opts ...Option) (Log, error) {
	return Write(w, k, collectRows(seq), opts...)
}

// Rows returns an iterator over the rows of data.
func (d TableData) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range d {
			if !yield(row) {
				return
			}
		}
	}
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collectRows(seq iter.Seq[[]string]) TableData {
	var data TableData
	seq(func(row []string) bool {
		data = append(data, row)
		return true
	})
	return data
}
