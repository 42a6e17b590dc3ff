package selector

import (
	"strings"

	"github.com/npillmayer/cssbuild/maybe"
)

// Builder accumulates the parts of a compound selector. Every modifying
// method returns the builder itself, thus calls may be chained:
//
//     b := selector.New().Element("div").ID("main").Class("container")
//
// Parts have to be introduced in CSS order (see CSSOrder). Re-adding a kind
// which may occur more than once (class, attribute, pseudo-class) is always
// allowed. The first violation is recorded and the builder stops accepting
// parts; it is the client's responsibility to check Err.
//
// A Builder must not be modified concurrently.
type Builder struct {
	compound Compound
	order    []Kind // kinds in order of their first occurrence
	err      error
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{}
}

// Element sets the type part (tag name).
func (b *Builder) Element(value string) *Builder {
	if b.accept(TypeKind, value) {
		b.compound.typ = maybe.Just(value)
	}
	return b
}

// ID sets the id part.
func (b *Builder) ID(value string) *Builder {
	if b.accept(IDKind, value) {
		b.compound.id = maybe.Just(value)
	}
	return b
}

// Class appends a class name.
func (b *Builder) Class(value string) *Builder {
	if b.accept(ClassKind, value) {
		b.compound.classes = append(b.compound.classes, value)
	}
	return b
}

// Attr appends an attribute selector, given without brackets, e.g.
// `href$=".png"`.
func (b *Builder) Attr(value string) *Builder {
	if b.accept(AttributeKind, value) {
		b.compound.attributes = append(b.compound.attributes, value)
	}
	return b
}

// PseudoClass appends a pseudo-class, given without the leading colon.
func (b *Builder) PseudoClass(value string) *Builder {
	if b.accept(PseudoClassKind, value) {
		b.compound.pseudoClasses = append(b.compound.pseudoClasses, value)
	}
	return b
}

// PseudoElement sets the pseudo-element, given without the leading colons.
func (b *Builder) PseudoElement(value string) *Builder {
	if b.accept(PseudoElementKind, value) {
		b.compound.pseudoElement = maybe.Just(value)
	}
	return b
}

// accept validates the introduction of a part of kind k and records k in
// the part order on its first occurrence.
func (b *Builder) accept(k Kind, value string) bool {
	if b.err != nil {
		tracer().Debugf("selector builder has error, ignoring %s %q", k, value)
		return false
	}
	if err := b.check(k); err != nil {
		tracer().Errorf("selector builder: %v", err)
		b.err = err
		return false
	}
	if !b.has(k) {
		b.order = append(b.order, k)
	}
	return true
}

func (b *Builder) check(k Kind) error {
	present := b.has(k)
	if present && k.Singular() {
		return &CardinalityError{Kind: k}
	}
	if present || len(b.order) == 0 {
		return nil
	}
	if last := b.order[len(b.order)-1]; k.rank() < last.rank() {
		return &OrderError{Kind: k, Last: last}
	}
	return nil
}

func (b *Builder) has(k Kind) bool {
	for _, o := range b.order {
		if o == k {
			return true
		}
	}
	return false
}

// Order returns the kinds of parts in the order they have been introduced.
func (b *Builder) Order() []Kind {
	o := make([]Kind, len(b.order))
	copy(o, b.order)
	return o
}

// Err returns the first validation error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Compound returns a copy of the compound selector built so far.
func (b *Builder) Compound() *Compound {
	return b.compound.copy()
}

// Combine uses the current state of b as the left operand of a new
// combination.
func (b *Builder) Combine(c Combinator, right Selector) *Combination {
	return Combine(b, c, right)
}

// Stringify renders the compound selector built so far.
func (b *Builder) Stringify() string {
	var sb strings.Builder
	b.render(&sb)
	return sb.String()
}

func (b *Builder) String() string {
	return b.Stringify()
}

// Match matches as the Compound case, with a copy of the current state.
func (b *Builder) Match() Matcher {
	return matcher{compound: b.Compound()}
}

func (b *Builder) render(sb *strings.Builder) {
	b.compound.render(sb)
}

var _ Selector = &Builder{}
var _ Selector = &Compound{}
var _ Selector = &Combination{}
