package pretty

import "strings"

// enter, leave and separator drive the indentation of nested composites.
// Each composite that indents calls enter once before its first child and
// leave once after its last; composite.close guarantees the pairing.

func (p *Printer) enter() {
	p.depth++
	p.newline()
}

func (p *Printer) leave() {
	p.depth--
	p.newline()
}

func (p *Printer) separator() {
	p.newline()
}

func (p *Printer) newline() {
	p.write("\n" + strings.Repeat(p.cfg.IndentFill, p.depth*p.cfg.IndentSize))
}

// composite tracks the children of one bracketed value.
type composite struct {
	p      *Printer
	punct  Punctuation
	indent bool
	n      int
}

// open writes the prefix. Indentation happens only when the children nest
// and the punctuation allows it.
func (p *Printer) open(punct Punctuation, nests bool) composite {
	p.write(punct.Prefix)
	return composite{p: p, punct: punct, indent: nests && punct.Indent}
}

// next writes whatever precedes the following child and reports whether
// formatting should go on.
func (c *composite) next() bool {
	if c.p.err != nil {
		return false
	}
	switch {
	case c.n == 0 && c.indent:
		c.p.enter()
	case c.n > 0:
		if c.indent {
			c.p.separator()
		}
		c.p.write(c.punct.Delimiter)
	}
	c.n++
	return true
}

// close unwinds the indentation and writes the suffix. An empty composite
// never indents, so it renders as prefix and suffix alone.
func (c *composite) close() {
	if c.n > 0 && c.indent {
		c.p.leave()
	}
	c.p.write(c.punct.Suffix)
}
