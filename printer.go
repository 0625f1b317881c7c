package pretty

import (
	"fmt"
	"io"
	"reflect"
	"unsafe"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

// Printer is a formatting context bound to a writer. It carries the
// indentation depth and the state set by directives, so independent
// printers never affect each other. A Printer is not safe for concurrent
// use.
//
// Writer errors are sticky: after the first failure nothing more is
// written and every call returns that error.
type Printer struct {
	w   io.Writer
	cfg Config
	log *zap.Logger

	depth int
	width int
	base  int
	err   error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	cfg := buildConfig(opts)
	return &Printer{w: w, cfg: cfg, log: cfg.Logger, base: 10}
}

// Print formats each value by its dynamic type. A [Directive] changes the
// printer state instead of being formatted.
func (p *Printer) Print(vals ...any) error {
	for _, v := range vals {
		if d, ok := v.(Directive); ok {
			d.apply(p)
			continue
		}
		p.value(valueFor(v))
	}
	return p.err
}

// Depth returns the current nesting depth. It is zero between top-level
// calls.
func (p *Printer) Depth() int { return p.depth }

// Err returns the first writer error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) write(s string) {
	if p.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		p.err = err
		p.log.Debug("write failed", zap.Error(err))
	}
}

// value dispatches on the shape of v's type. Values reached through
// interfaces keep their interface type, so unions are seen as unions.
func (p *Printer) value(v reflect.Value) {
	if !v.IsValid() {
		p.write(p.cfg.EmptyUnion)
		return
	}
	t := v.Type()
	info := infoOf(t)
	switch info.shape {
	case ShapeAtomic:
		p.atomic(v)
	case ShapeOpaque:
		p.log.Debug("no textual form, writing type name", zap.String("type", info.name))
		p.write(info.name)
	case ShapeString:
		p.text(v.String())
	case ShapePair:
		p.pair(v.Field(0), v.Field(1), p.cfg.Pair)
	case ShapeTuple:
		p.tuple(v, info.nests)
	case ShapeRange:
		p.sequence(v, info)
	case ShapeOptional:
		p.optional(v)
	case ShapeUnion:
		if v.IsNil() {
			p.write(p.cfg.EmptyUnion)
			return
		}
		p.value(v.Elem())
	case ShapeUnit:
		p.write(p.cfg.Unit)
	}
}

func (p *Printer) atomic(v reflect.Value) {
	v = readable(v)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		p.write(p.cfg.EmptyOptional)
		return
	}
	verb := "%v"
	if p.base != 10 && isInteger(v.Kind()) && !hasTextMethod(v.Type()) {
		verb = baseVerbs[p.base]
	}
	p.text(fmt.Sprintf(verb, v))
}

// text writes s, padded to the width set by the last Width directive.
func (p *Printer) text(s string) {
	if p.width > 0 {
		s = runewidth.FillLeft(s, p.width)
		p.width = 0
	}
	p.write(s)
}

func (p *Printer) pair(first, second reflect.Value, punct Punctuation) {
	p.write(punct.Prefix)
	p.value(first)
	p.write(punct.Delimiter)
	p.value(second)
	p.write(punct.Suffix)
}

func (p *Printer) optional(v reflect.Value) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			p.write(p.cfg.EmptyOptional)
			return
		}
		p.value(v.Elem())
		return
	}
	v = addressable(v)
	if !v.Field(1).Bool() {
		p.write(p.cfg.EmptyOptional)
		return
	}
	p.value(readable(v.Field(0)))
}

func (p *Printer) tuple(v reflect.Value, nests bool) {
	v = addressable(v)
	c := p.open(p.cfg.Tuple, nests)
	defer c.close()
	for i := range v.NumField() {
		if !c.next() {
			return
		}
		p.value(readable(v.Field(i)))
	}
}

func (p *Printer) sequence(v reflect.Value, info typeInfo) {
	if v.Kind() == reflect.Func && !v.CanInterface() {
		// Read-only iterators cannot be called.
		p.write(info.name)
		return
	}
	c := p.open(p.cfg.Range, info.nests)
	defer c.close()
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			if !c.next() {
				return
			}
			p.value(v.Index(i))
		}
	case reflect.Map:
		for _, k := range sortedKeys(v, p.cfg.NaturalKeys) {
			if !c.next() {
				return
			}
			p.pair(k, v.MapIndex(k), p.cfg.Entry)
		}
	case reflect.Func:
		p.iterate(v, &c)
	}
}

func (p *Printer) iterate(v reflect.Value, c *composite) {
	if v.IsNil() {
		return
	}
	if y, _ := iterYield(v.Type()); y.NumIn() == 1 {
		for e := range v.Seq() {
			if !c.next() {
				return
			}
			p.value(e)
		}
		return
	}
	for k, e := range v.Seq2() {
		if !c.next() {
			return
		}
		p.pair(k, e, p.cfg.Entry)
	}
}

// addressable returns v when it is addressable, otherwise an addressable
// copy, so that its fields can be made readable.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() || !v.CanInterface() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// readable drops the read-only flag of a value reached through an
// unexported field. Without it fmt cannot call String, Error or Format,
// and iterators cannot be called at all.
func readable(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

var baseVerbs = map[int]string{2: "%b", 8: "%o", 10: "%v", 16: "%x"}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
