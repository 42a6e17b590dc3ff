/*
Package selectordbg implements helpers to debug selector trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selectordbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cssbuild/selector"
	tp "github.com/xlab/treeprint"
)

// Dump prints a selector tree in a human readable form, one line per
// node. Compound selectors are printed as branches with their parts as
// leafs:
//
//     .
//     └── "+"
//         ├── div#main
//         │   ├── [element]  div
//         │   └── [id]  main
//         └── p
//             └── [element]  p
//
// If the tree carries a construction error, the root line shows it.
func Dump(w io.Writer, sel selector.Selector) error {
	_, err := io.WriteString(w, String(sel))
	return err
}

// String returns the output of Dump as a string.
func String(sel selector.Selector) string {
	if sel == nil {
		return "<nil>\n"
	}
	var root tp.Tree
	if sel.Err() != nil {
		root = tp.NewWithRoot(fmt.Sprintf("error: %v", sel.Err()))
	} else {
		root = tp.New()
	}
	printSelector(root, sel)
	return root.String()
}

func printSelector(p tp.Tree, sel selector.Selector) {
	var c *selector.Compound
	var cb *selector.Combination
	switch m := sel.Match(); m {
	case m.Compound(&c):
		printCompound(p, c)
	case m.Combination(&cb):
		branch := p.AddBranch(fmt.Sprintf("%q", string(cb.Combinator())))
		printSelector(branch, cb.Left())
		printSelector(branch, cb.Right())
	}
}

func printCompound(p tp.Tree, c *selector.Compound) {
	if c.Empty() {
		p.AddNode("<empty>")
		return
	}
	branch := p.AddBranch(c.Stringify())
	single := func(k selector.Kind, v string, ok bool) {
		if ok {
			branch.AddMetaNode(k.String(), v)
		}
	}
	multi := func(k selector.Kind, vs []string) {
		if len(vs) > 0 {
			branch.AddMetaNode(k.String(), strings.Join(vs, " "))
		}
	}
	single(selector.TypeKind, c.Type().WithDefault(""), c.Type().IsJust())
	single(selector.IDKind, c.ID().WithDefault(""), c.ID().IsJust())
	multi(selector.ClassKind, c.Classes())
	multi(selector.AttributeKind, c.Attributes())
	multi(selector.PseudoClassKind, c.PseudoClasses())
	single(selector.PseudoElementKind, c.PseudoElement().WithDefault(""), c.PseudoElement().IsJust())
}
