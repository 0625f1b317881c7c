package pretty

import (
	"errors"
	"io"
	"reflect"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Write formats v and writes it to w. The static type T drives the
// rendering, so an interface-typed T renders as a union.
func Write[T any](w io.Writer, v T, opts ...Option) error {
	return Format(NewPrinter(w, opts...), v)
}

// Sprint formats v and returns the text.
func Sprint[T any](v T, opts ...Option) string {
	var sb strings.Builder
	_ = Write(&sb, v, opts...)
	return sb.String()
}

// Format writes v to p using the static type T.
func Format[T any](p *Printer, v T) error {
	p.value(valueFor(v))
	return p.err
}

// WriteTyped writes v to w preceded by the name of its static type.
func WriteTyped[T any](w io.Writer, v T, opts ...Option) error {
	return FormatTyped(NewTypedPrinter(w, opts...), v)
}

// SprintTyped is like [WriteTyped] but returns the text.
func SprintTyped[T any](v T, opts ...Option) string {
	var sb strings.Builder
	_ = WriteTyped(&sb, v, opts...)
	return sb.String()
}

// valueFor returns a reflect.Value whose type is T itself. For interface
// types reflect.ValueOf would lose the static type, so the value is boxed
// in an addressable T instead.
func valueFor[T any](v T) reflect.Value {
	typ := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	if typ.Kind() == reflect.Interface {
		boxed := reflect.New(typ).Elem()
		if rv.IsValid() {
			boxed.Set(rv)
		}
		rv = boxed
	}
	return rv
}
