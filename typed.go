package pretty

import (
	"io"
	"reflect"
)

// TypedPrinter writes every value preceded by the name of its type,
// wrapped in the Type punctuation of the configuration. With the defaults
// a []int renders as "[]int({1, 2, 3})". Values without a textual form
// render as their type name alone, as in "func()()".
type TypedPrinter struct {
	p *Printer
}

// NewTypedPrinter returns a TypedPrinter writing to w.
func NewTypedPrinter(w io.Writer, opts ...Option) *TypedPrinter {
	return &TypedPrinter{p: NewPrinter(w, opts...)}
}

// Print writes each value with the name of its dynamic type. A nil value
// is named "any". Directives are applied to the underlying printer.
func (tp *TypedPrinter) Print(vals ...any) error {
	for _, v := range vals {
		if d, ok := v.(Directive); ok {
			d.apply(tp.p)
			continue
		}
		if v == nil {
			tp.typed(valueFor(v))
			continue
		}
		tp.typed(reflect.ValueOf(v))
	}
	return tp.p.err
}

// Depth returns the nesting depth of the underlying printer.
func (tp *TypedPrinter) Depth() int { return tp.p.Depth() }

// Err returns the first writer error, if any.
func (tp *TypedPrinter) Err() error { return tp.p.Err() }

// FormatTyped writes v to tp named by its static type T.
func FormatTyped[T any](tp *TypedPrinter, v T) error {
	tp.typed(valueFor(v))
	return tp.p.err
}

func (tp *TypedPrinter) typed(v reflect.Value) {
	p := tp.p
	punct := p.cfg.Type
	info := infoOf(v.Type())
	p.write(punct.Prefix)
	p.write(info.name)
	p.write(punct.Delimiter)
	if info.shape != ShapeOpaque {
		p.value(v)
	}
	p.write(punct.Suffix)
}
