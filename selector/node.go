package selector

import (
	"strings"

	"github.com/npillmayer/cssbuild/maybe"
)

// Selector is either a compound selector or a combination of two
// selectors:
//
//     type Selector
//         = Compound
//         | Combination Selector Combinator Selector
//
// Builders are selectors as well; they match as their current compound
// selector.
type Selector interface {
	Stringify() string // render to CSS text
	String() string    // same as Stringify
	Err() error        // first error occured during construction, if any
	Match() Matcher    // pattern match on the variant
	render(*strings.Builder)
}

// Combinator is the symbol joining two selectors. The standard CSS
// combinators are predefined, but any symbol will be rendered verbatim.
type Combinator string

// Standard combinators.
const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

// IsStandard is true for the four combinators defined by CSS.
func (c Combinator) IsStandard() bool {
	switch c {
	case Descendant, Child, NextSibling, SubsequentSibling:
		return true
	}
	return false
}

// --- Compound --------------------------------------------------------------

// Compound is an immutable compound selector.
// The zero value is the empty selector.
type Compound struct {
	typ           maybe.Maybe[string]
	id            maybe.Maybe[string]
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement maybe.Maybe[string]
}

// Type returns the element part.
func (c *Compound) Type() maybe.Maybe[string] { return c.typ }

// ID returns the id part.
func (c *Compound) ID() maybe.Maybe[string] { return c.id }

// PseudoElement returns the pseudo-element part.
func (c *Compound) PseudoElement() maybe.Maybe[string] { return c.pseudoElement }

// Classes returns the class names in insertion order.
func (c *Compound) Classes() []string { return clone(c.classes) }

// Attributes returns the attribute selectors in insertion order.
func (c *Compound) Attributes() []string { return clone(c.attributes) }

// PseudoClasses returns the pseudo-classes in insertion order.
func (c *Compound) PseudoClasses() []string { return clone(c.pseudoClasses) }

// Empty is true if no part is set.
func (c *Compound) Empty() bool {
	return !c.typ.IsJust() && !c.id.IsJust() && !c.pseudoElement.IsJust() &&
		len(c.classes)+len(c.attributes)+len(c.pseudoClasses) == 0
}

// Stringify renders c in CSS order.
func (c *Compound) Stringify() string {
	var b strings.Builder
	c.render(&b)
	return b.String()
}

func (c *Compound) String() string {
	return c.Stringify()
}

// Err is always nil for a compound selector.
func (c *Compound) Err() error {
	return nil
}

// Match returns a matcher for the Compound case.
func (c *Compound) Match() Matcher {
	return matcher{compound: c}
}

func (c *Compound) copy() *Compound {
	return &Compound{
		typ:           c.typ,
		id:            c.id,
		classes:       clone(c.classes),
		attributes:    clone(c.attributes),
		pseudoClasses: clone(c.pseudoClasses),
		pseudoElement: c.pseudoElement,
	}
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

// --- Combination -----------------------------------------------------------

// Combination is an immutable node joining two selectors with a combinator.
type Combination struct {
	left       Selector
	combinator Combinator
	right      Selector
	err        error
}

// Combine joins left and right with combinator c. Builders given as
// operands are copied, thus modifying them afterwards will not alter the
// combination. Errors of the operands are propagated. A nil operand, typed
// or untyped, counts as the empty selector.
func Combine(left Selector, c Combinator, right Selector) *Combination {
	left, right = orEmpty(left), orEmpty(right)
	comb := &Combination{combinator: c}
	if comb.err = left.Err(); comb.err == nil {
		comb.err = right.Err()
	}
	comb.left, comb.right = freeze(left), freeze(right)
	tracer().Debugf("combine %q %s %q", comb.left, c, comb.right)
	return comb
}

// orEmpty replaces a nil selector, including a typed nil pointer, by the
// empty compound.
func orEmpty(sel Selector) Selector {
	switch s := sel.(type) {
	case nil:
		return &Compound{}
	case *Builder:
		if s == nil {
			return &Compound{}
		}
	case *Compound:
		if s == nil {
			return &Compound{}
		}
	case *Combination:
		if s == nil {
			return &Compound{}
		}
	}
	return sel
}

func freeze(sel Selector) Selector {
	if b, ok := sel.(*Builder); ok {
		return b.Compound()
	}
	return sel
}

// Combine uses c as the left operand of a new combination.
func (c *Combination) Combine(comb Combinator, right Selector) *Combination {
	return Combine(c, comb, right)
}

// Left returns the left operand.
func (c *Combination) Left() Selector { return c.left }

// Right returns the right operand.
func (c *Combination) Right() Selector { return c.right }

// Combinator returns the combinator symbol.
func (c *Combination) Combinator() Combinator { return c.combinator }

// Stringify renders the combination, left to right.
func (c *Combination) Stringify() string {
	var b strings.Builder
	c.render(&b)
	return b.String()
}

func (c *Combination) String() string {
	return c.Stringify()
}

// Err returns the first error of the operands, if any.
func (c *Combination) Err() error {
	return c.err
}

// Match returns a matcher for the Combination case.
func (c *Combination) Match() Matcher {
	return matcher{combination: c}
}

// --- Matching --------------------------------------------------------------

// Matcher matches the variants of a selector. A case method returns the
// matcher itself if the case applies, nil otherwise:
//
//     var c *selector.Compound
//     var cb *selector.Combination
//     switch m := sel.Match(); m {
//     case m.Compound(&c):
//         ...
//     case m.Combination(&cb):
//         ...
//     }
type Matcher interface {
	Compound(**Compound) Matcher
	Combination(**Combination) Matcher
}

type matcher struct {
	compound    *Compound
	combination *Combination
}

func (m matcher) Compound(c **Compound) Matcher {
	if m.compound != nil {
		if c != nil {
			*c = m.compound
		}
		return m
	}
	return nil
}

func (m matcher) Combination(c **Combination) Matcher {
	if m.combination != nil {
		if c != nil {
			*c = m.combination
		}
		return m
	}
	return nil
}
