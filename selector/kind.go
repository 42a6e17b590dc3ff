package selector

// Kind is the kind of a part of a compound selector. The numeric value of a
// kind is its rank in CSS order.
type Kind uint8

const (
	TypeKind          Kind = iota // element / tag name
	IDKind                        // #id
	ClassKind                     // .class
	AttributeKind                 // [attribute]
	PseudoClassKind               // :pseudo-class
	PseudoElementKind             // ::pseudo-element
)

var kindNames = [...]string{
	"element",
	"id",
	"class",
	"attribute",
	"pseudo-class",
	"pseudo-element",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<unknown kind>"
}

// Singular is true for kinds which may occur at most once in a compound
// selector.
func (k Kind) Singular() bool {
	return k == TypeKind || k == IDKind || k == PseudoElementKind
}

func (k Kind) rank() int {
	return int(k)
}

// CSSOrder describes the order in which parts have to be added.
const CSSOrder = "element, id, class, attribute, pseudo-class, pseudo-element"
