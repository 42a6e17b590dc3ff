package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cssbuild/cssom"
	"github.com/npillmayer/cssbuild/selector"
	"gopkg.in/yaml.v3"
)

// File is the YAML input of cssel.
type File struct {
	Rules []RuleSpec `yaml:"rules"`
}

// RuleSpec describes one stylesheet rule. Selector and the entries of
// Selectors are grouped into one comma separated prelude.
type RuleSpec struct {
	Selector     *SelectorSpec  `yaml:"selector,omitempty"`
	Selectors    []SelectorSpec `yaml:"selectors,omitempty"`
	Declarations []DeclSpec     `yaml:"declarations,omitempty"`
}

// SelectorSpec describes a compound selector, optionally combined with
// further selectors. Named fields are applied in CSS order, entries of
// Parts afterwards in the order given. Combine entries are chained left to
// right.
type SelectorSpec struct {
	Element       string              `yaml:"element,omitempty"`
	ID            string              `yaml:"id,omitempty"`
	Classes       []string            `yaml:"classes,omitempty"`
	Attributes    []string            `yaml:"attributes,omitempty"`
	PseudoClasses []string            `yaml:"pseudo-classes,omitempty"`
	PseudoElement string              `yaml:"pseudo-element,omitempty"`
	Parts         []map[string]string `yaml:"parts,omitempty"`
	Combine       []CombineSpec       `yaml:"combine,omitempty"`
}

// CombineSpec joins a selector to the right of the current one. An empty
// combinator means descendant.
type CombineSpec struct {
	Combinator string       `yaml:"combinator"`
	Selector   SelectorSpec `yaml:"selector"`
}

// DeclSpec is a style declaration.
type DeclSpec struct {
	Property  string `yaml:"property"`
	Value     string `yaml:"value"`
	Important bool   `yaml:"important,omitempty"`
}

var errEmptyRule = errors.New("rule without selector")

// loadFile reads a YAML input file. Path "-" reads from stdin.
func loadFile(path string) (*File, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return decodeFile(r)
}

func decodeFile(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode selector file: %w", err)
	}
	return &f, nil
}

// selectors builds all selectors of a rule.
func (r RuleSpec) selectors() ([]selector.Selector, error) {
	var specs []SelectorSpec
	if r.Selector != nil {
		specs = append(specs, *r.Selector)
	}
	specs = append(specs, r.Selectors...)
	if len(specs) == 0 {
		return nil, errEmptyRule
	}
	sels := make([]selector.Selector, 0, len(specs))
	for _, s := range specs {
		sel, err := s.build()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

func (r RuleSpec) declarations() []cssom.Declaration {
	decls := make([]cssom.Declaration, len(r.Declarations))
	for i, d := range r.Declarations {
		decls[i] = cssom.Declaration{Property: d.Property, Value: d.Value, Important: d.Important}
	}
	return decls
}

// build constructs the selector tree. Construction errors are reported,
// together with the tree built so far.
func (s SelectorSpec) build() (selector.Selector, error) {
	b, err := s.compound()
	if err != nil {
		return b, err
	}
	var sel selector.Selector = b
	for _, c := range s.Combine {
		right, err := c.Selector.build()
		if err != nil {
			return right, err
		}
		comb := selector.Combinator(c.Combinator)
		if comb == "" {
			comb = selector.Descendant
		}
		sel = selector.Combine(sel, comb, right)
	}
	return sel, sel.Err()
}

func (s SelectorSpec) compound() (*selector.Builder, error) {
	b := selector.New()
	if s.Element != "" {
		b.Element(s.Element)
	}
	if s.ID != "" {
		b.ID(s.ID)
	}
	for _, c := range s.Classes {
		b.Class(c)
	}
	for _, a := range s.Attributes {
		b.Attr(a)
	}
	for _, p := range s.PseudoClasses {
		b.PseudoClass(p)
	}
	if s.PseudoElement != "" {
		b.PseudoElement(s.PseudoElement)
	}
	for _, part := range s.Parts {
		if len(part) != 1 {
			return b, fmt.Errorf("selector part needs exactly one kind, has %d", len(part))
		}
		for k, v := range part {
			switch k {
			case "element":
				b.Element(v)
			case "id":
				b.ID(v)
			case "class":
				b.Class(v)
			case "attribute":
				b.Attr(v)
			case "pseudo-class":
				b.PseudoClass(v)
			case "pseudo-element":
				b.PseudoElement(v)
			default:
				return b, fmt.Errorf("unknown selector part %q", k)
			}
		}
	}
	return b, b.Err()
}
