package pretty

import "go.uber.org/zap"

// Directive changes the state of a printer instead of being formatted.
// Directives are honoured by [Printer.Print] and [TypedPrinter.Print];
// a TypedPrinter passes them through without writing a type name.
type Directive interface {
	apply(p *Printer)
}

type directiveFunc func(p *Printer)

func (f directiveFunc) apply(p *Printer) { f(p) }

var (
	// Endl writes a newline and flushes the writer.
	Endl Directive = directiveFunc(func(p *Printer) {
		p.write("\n")
		p.flush()
	})

	// Flush flushes the writer if it has a Flush method, as bufio.Writer
	// does.
	Flush Directive = directiveFunc((*Printer).flush)
)

// Width pads the next atomic or string value to n display columns, right
// aligned. It applies to one value only. Punctuation and the type names
// written by a TypedPrinter are never padded, so under a TypedPrinter the
// padding lands inside the brackets: "int(  1)".
func Width(n int) Directive {
	return directiveFunc(func(p *Printer) { p.width = n })
}

// Base sets the base used for integers: 2, 8, 10 or 16. It stays in effect
// until changed. Types with their own String, Error or Format method are
// not affected.
func Base(n int) Directive {
	return directiveFunc(func(p *Printer) {
		if _, ok := baseVerbs[n]; !ok {
			p.log.Debug("unsupported base ignored", zap.Int("base", n))
			return
		}
		p.base = n
	})
}

type flusher interface {
	Flush() error
}

func (p *Printer) flush() {
	if p.err != nil {
		return
	}
	f, ok := p.w.(flusher)
	if !ok {
		return
	}
	if err := f.Flush(); err != nil {
		p.err = err
		p.log.Debug("flush failed", zap.Error(err))
	}
}
