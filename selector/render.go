package selector

import (
	"strings"

	"github.com/npillmayer/cssbuild/result"
)

// render writes the parts of c in CSS order, independent of the order they
// have been added in.
func (c *Compound) render(b *strings.Builder) {
	var v string
	switch m := c.typ.Match(); m {
	case m.Just(&v):
		b.WriteString(v)
	}
	switch m := c.id.Match(); m {
	case m.Just(&v):
		b.WriteByte('#')
		b.WriteString(v)
	}
	for _, cl := range c.classes {
		b.WriteByte('.')
		b.WriteString(cl)
	}
	for _, a := range c.attributes {
		b.WriteByte('[')
		b.WriteString(a)
		b.WriteByte(']')
	}
	for _, p := range c.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(p)
	}
	switch m := c.pseudoElement.Match(); m {
	case m.Just(&v):
		b.WriteString("::")
		b.WriteString(v)
	}
}

// render writes left, combinator and right, separated by a single space
// each. The descendant combinator thus renders as three spaces.
func (c *Combination) render(b *strings.Builder) {
	c.left.render(b)
	b.WriteByte(' ')
	b.WriteString(string(c.combinator))
	b.WriteByte(' ')
	c.right.render(b)
}

// Render renders sel if it has been constructed without errors. Otherwise
// the first construction error is returned.
func Render(sel Selector) result.Result[string] {
	sel = orEmpty(sel)
	if err := sel.Err(); err != nil {
		return result.Err[string](err)
	}
	return result.Ok(sel.Stringify())
}
