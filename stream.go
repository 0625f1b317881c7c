package pretty

import (
	"io"
	"iter"
)

// WriteIter renders the values produced by seq as a range and writes each
// one to w as it arrives. Indentation follows the element type T.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], opts ...Option) error {
	return Write(w, seq, opts...)
}

// WriteChan renders the values received from ch until it is closed.
// It is a thin wrapper around [WriteIter]. Channels found inside other
// values are never drained; they render as their type name.
func WriteChan[T any](w io.Writer, ch <-chan T, opts ...Option) error {
	return WriteIter(w, chanToIter(ch), opts...)
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
