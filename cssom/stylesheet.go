package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Selectors built with package selector end up as preludes of stylesheet
// rules. In order to de-couple the construction of selectors from concrete
// implementations of CSS stylesheets, we introduce an interface for CSS
// stylesheets (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
	String() string         // CSS text of the stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// Declaration is a single style property of a rule.
type Declaration struct {
	Property  string // e.g., "margin-top"
	Value     string // e.g., "15px"
	Important bool   // flagged with "!important"
}

// Decl is a shortcut for creating a declaration which is not important.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}
