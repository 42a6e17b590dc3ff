package selector_test

import (
	"errors"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssbuild/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStringifyExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuild.selector")
	defer teardown()
	//
	sel := selector.ID("main").Class("container").Class("editable")
	if err := sel.Err(); err != nil {
		t.Fatal(err)
	}
	if s := sel.Stringify(); s != "#main.container.editable" {
		t.Errorf("expected '#main.container.editable', got %q", s)
	}
	sel = selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
	if err := sel.Err(); err != nil {
		t.Fatal(err)
	}
	if s := sel.Stringify(); s != `a[href$=".png"]:focus` {
		t.Errorf(`expected 'a[href$=".png"]:focus', got %q`, s)
	}
	if sel.String() != sel.Stringify() {
		t.Errorf("expected String to equal Stringify, is %q", sel.String())
	}
}

func TestStringifyNestedCombinations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuild.selector")
	defer teardown()
	//
	sel := selector.Combine(
		selector.Element("div").ID("main").Class("container").Class("draggable"),
		"+",
		selector.Combine(
			selector.Element("table").ID("data"),
			"~",
			selector.Combine(
				selector.Element("tr").PseudoClass("nth-of-type(even)"),
				" ",
				selector.Element("td").PseudoClass("nth-of-type(even)"),
			),
		),
	)
	if err := sel.Err(); err != nil {
		t.Fatal(err)
	}
	expected := "div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)"
	if s := sel.Stringify(); s != expected {
		t.Errorf("expected %q, got %q", expected, s)
	}
	if _, err := cascadia.Parse(sel.Stringify()); err != nil {
		t.Errorf("expected rendered selector to be valid CSS, got %v", err)
	}
}

func TestStringifyIsIdempotent(t *testing.T) {
	sel := selector.Element("ul").Combine(selector.Child, selector.Element("li").Class("item"))
	first := sel.Stringify()
	if first != "ul > li.item" {
		t.Errorf("expected 'ul > li.item', got %q", first)
	}
	if second := sel.Stringify(); second != first {
		t.Errorf("expected repeated stringify to yield %q, got %q", first, second)
	}
}

func TestStringifyCanonicalOrder(t *testing.T) {
	b := selector.Element("input").ID("name").Class("wide").Attr("required").
		PseudoClass("focus").PseudoElement("placeholder")
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}
	if s := b.Stringify(); s != "input#name.wide[required]:focus::placeholder" {
		t.Errorf("expected all parts in CSS order, got %q", s)
	}
	if _, err := cascadia.ParseWithPseudoElement(b.Stringify()); err != nil {
		t.Errorf("expected rendered selector to be valid CSS, got %v", err)
	}
	if s := selector.ID("x").Class("b").Class("c").Stringify(); s != "#x.b.c" {
		t.Errorf("expected '#x.b.c', got %q", s)
	}
}

func TestCombinationLeftToRight(t *testing.T) {
	a, b, c := selector.Element("h1"), selector.Class("lead"), selector.Element("p")
	sel := selector.Combine(selector.Combine(a, selector.NextSibling, b), selector.SubsequentSibling, c)
	expected := a.Stringify() + " + " + b.Stringify() + " ~ " + c.Stringify()
	if s := sel.Stringify(); s != expected {
		t.Errorf("expected %q, got %q", expected, s)
	}
	chained := a.Combine(selector.NextSibling, b).Combine(selector.SubsequentSibling, c)
	if chained.Stringify() != sel.Stringify() {
		t.Errorf("expected chained combination to render %q, got %q", sel.Stringify(), chained.Stringify())
	}
	if _, err := cascadia.Parse(sel.Stringify()); err != nil {
		t.Errorf("expected rendered selector to be valid CSS, got %v", err)
	}
}

func TestCombinationCopiesBuilders(t *testing.T) {
	left := selector.Element("div")
	sel := selector.Combine(left, selector.Child, selector.Element("p"))
	left.Class("changed")
	if s := sel.Stringify(); s != "div > p" {
		t.Errorf("expected combination to be unaffected by the builder, got %q", s)
	}
	if sel.Combinator() != selector.Child {
		t.Errorf("expected child combinator, got %q", sel.Combinator())
	}
	if l, r := sel.Left().Stringify(), sel.Right().Stringify(); l != "div" || r != "p" {
		t.Errorf("expected operands 'div' and 'p', got %q and %q", l, r)
	}
}

func TestCombinationPassesSymbolVerbatim(t *testing.T) {
	sel := selector.Combine(selector.Element("a"), "||", selector.Element("b"))
	if s := sel.Stringify(); s != "a || b" {
		t.Errorf("expected 'a || b', got %q", s)
	}
	if sel.Combinator().IsStandard() {
		t.Error("expected '||' to be a non-standard combinator")
	}
	if !selector.Descendant.IsStandard() {
		t.Error("expected descendant to be a standard combinator")
	}
}

func TestCombinationPropagatesErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuild.selector")
	defer teardown()
	//
	broken := selector.Class("a").ID("b")
	sel := selector.Combine(selector.Element("div"), selector.Child, broken)
	if !errors.Is(sel.Err(), selector.ErrOrder) {
		t.Errorf("expected order error to propagate, got %v", sel.Err())
	}
	outer := selector.Combine(sel, selector.Descendant, selector.Element("span"))
	if !errors.Is(outer.Err(), selector.ErrOrder) {
		t.Errorf("expected order error to propagate to outer combination, got %v", outer.Err())
	}
	if s := outer.Stringify(); s != "div > .a   span" {
		t.Errorf("expected stringify to succeed regardless of errors, got %q", s)
	}
}

func TestCombinationWithNilOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuild.selector")
	defer teardown()
	//
	var b *selector.Builder
	var c *selector.Compound
	var cb *selector.Combination
	cases := []struct {
		sel      *selector.Combination
		expected string
	}{
		{selector.Combine(b, selector.Child, selector.Element("p")), " > p"},
		{selector.Combine(selector.Element("p"), selector.Child, c), "p > "},
		{selector.Combine(cb, selector.NextSibling, nil), " + "},
	}
	for i, x := range cases {
		if err := x.sel.Err(); err != nil {
			t.Errorf("case #%d: expected nil operand to count as empty selector, got %v", i, err)
		}
		if s := x.sel.Stringify(); s != x.expected {
			t.Errorf("case #%d: expected %q, got %q", i, x.expected, s)
		}
	}
	if s, err := selector.Render(b).Get(); err != nil || s != "" {
		t.Errorf("expected nil builder to render empty, got %q, %v", s, err)
	}
}

func TestRender(t *testing.T) {
	s, err := selector.Render(selector.Element("p").Class("note")).Get()
	if err != nil {
		t.Fatal(err)
	}
	if s != "p.note" {
		t.Errorf("expected 'p.note', got %q", s)
	}
	r := selector.Render(selector.Element("p").Element("q"))
	var rerr error
	switch m := r.Match(); m {
	case m.Ok(&s):
		t.Errorf("expected render of broken selector to fail, got %q", s)
	case m.Err(&rerr):
		t.Logf("render failed: %v", rerr)
		var cerr *selector.CardinalityError
		if !errors.As(rerr, &cerr) {
			t.Errorf("expected *CardinalityError, got %T", rerr)
		}
	}
}

func TestMatchVariants(t *testing.T) {
	var c *selector.Compound
	var cb *selector.Combination
	b := selector.Element("em")
	switch m := b.Match(); m {
	case m.Combination(&cb):
		t.Error("expected builder to match as compound")
	case m.Compound(&c):
		if c.Stringify() != "em" {
			t.Errorf("expected compound 'em', got %q", c.Stringify())
		}
	}
	sel := selector.Combine(b, selector.Descendant, selector.Element("strong"))
	switch m := sel.Match(); m {
	case m.Compound(&c):
		t.Error("expected combination to match as combination")
	case m.Combination(&cb):
		if cb != sel {
			t.Error("expected matched combination to be the selector itself")
		}
	}
}
