/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssbuild/cssom"
	"github.com/npillmayer/cssbuild/selector"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbuild.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssbuild.cssom")
}

// ErrNoSelector is flagged when a rule is to be created without a selector.
var ErrNoSelector = errors.New("rule needs at least one selector")

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// NewStyleSheet creates an empty stylesheet.
func NewStyleSheet() *CSSStyles {
	return &CSSStyles{}
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// AddRule appends a rule for one or more selectors. The rule's prelude is
// the comma-separated list of the rendered selectors. If one of the
// selectors carries a construction error, no rule is added and the error is
// returned.
func (sheet *CSSStyles) AddRule(decls []cssom.Declaration, sels ...selector.Selector) error {
	if len(sels) == 0 {
		return ErrNoSelector
	}
	rule := css.NewRule(css.QualifiedRule)
	for _, sel := range sels {
		s, err := selector.Render(sel).Get()
		if err != nil {
			tracer().Errorf("cannot add rule: %v", err)
			return fmt.Errorf("invalid selector %q: %w", sel, err)
		}
		rule.Selectors = append(rule.Selectors, s)
	}
	rule.Prelude = strings.Join(rule.Selectors, ", ")
	for _, d := range decls {
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property:  d.Property,
			Value:     d.Value,
			Important: d.Important,
		})
	}
	tracer().Debugf("adding rule for %q with %d declarations", rule.Prelude, len(decls))
	sheet.css.Rules = append(sheet.css.Rules, rule)
	return nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() { // foreign implementation: copy rule by rule
		rule := css.NewRule(css.QualifiedRule)
		rule.Prelude = r.Selector()
		for _, s := range strings.Split(r.Selector(), ",") {
			rule.Selectors = append(rule.Selectors, strings.TrimSpace(s))
		}
		for _, p := range r.Properties() {
			rule.Declarations = append(rule.Declarations, &css.Declaration{
				Property:  p,
				Value:     r.Value(p),
				Important: r.IsImportant(p),
			})
		}
		sheet.css.Rules = append(sheet.css.Rules, rule)
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

// String returns the CSS text of the stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}
