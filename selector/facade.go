package selector

// The constructors below start a new builder with exactly one part. They
// do not share any state; every call returns an independent builder.

// Element starts a selector with a type part.
func Element(value string) *Builder {
	return New().Element(value)
}

// ID starts a selector with an id part.
func ID(value string) *Builder {
	return New().ID(value)
}

// Class starts a selector with a class part.
func Class(value string) *Builder {
	return New().Class(value)
}

// Attr starts a selector with an attribute part.
func Attr(value string) *Builder {
	return New().Attr(value)
}

// PseudoClass starts a selector with a pseudo-class part.
func PseudoClass(value string) *Builder {
	return New().PseudoClass(value)
}

// PseudoElement starts a selector with a pseudo-element part.
func PseudoElement(value string) *Builder {
	return New().PseudoElement(value)
}
