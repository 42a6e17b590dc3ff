/*
Package selector builds CSS complex selectors from parts and renders them
to text.

A compound selector is accumulated by a Builder, one part at a time:

    sel := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
    sel.Stringify()  // a[href$=".png"]:focus

Compound selectors may be joined by combinators into a tree, which renders
left to right exactly as it has been built:

    selector.Combine(
        selector.Element("table").ID("data"),
        selector.SubsequentSibling,
        selector.Element("tr").PseudoClass("nth-of-type(even)"),
    ).Stringify()    // table#data ~ tr:nth-of-type(even)

Parts have to be added in CSS order: element, id, class, attribute,
pseudo-class, pseudo-element. Element, id and pseudo-element may occur at most
once. A builder violating one of these rules records the error and ignores
every further modification; check Err before using a selector.

Values are not checked for being legal CSS tokens, and combinator symbols
are rendered as given.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbuild.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cssbuild.selector")
}
