package pattern

import (
	"github.com/erraggy/specfold/node"
)

// Family identifies which pattern family a field name belongs to.
type Family int

const (
	// FamilyUnknown is a field name that matched no family.
	FamilyUnknown Family = iota
	// FamilyPathTemplate is a URL path with brace placeholders, e.g. "/pets/{petId}".
	FamilyPathTemplate
	// FamilyRuntimeExpression is a dollar-prefixed expression, e.g. "$request.body".
	FamilyRuntimeExpression
	// FamilySpecificationExtension is a reserved-prefix extension field, e.g. "x-internal".
	FamilySpecificationExtension
	// FamilyCallbackExpression is a brace-templated expression that is not a
	// path, e.g. "{$request.body#/callbackUrl}".
	FamilyCallbackExpression
	// FamilyMediaType is a two-part media type, e.g. "application/json".
	FamilyMediaType
	// FamilyHeader is a header-style token, the fallback family.
	FamilyHeader
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyPathTemplate:
		return "path-template"
	case FamilyRuntimeExpression:
		return "runtime-expression"
	case FamilySpecificationExtension:
		return "specification-extension"
	case FamilyCallbackExpression:
		return "callback-expression"
	case FamilyMediaType:
		return "media-type"
	case FamilyHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Param is a parameter extracted from a patterned field name.
type Param struct {
	// Name is the parameter name as written in the field.
	Name string
	// Type is the inferred parameter type: "integer" for count/index-style
	// names, "string" otherwise.
	Type string
	// Position is the zero-based order of the parameter within the field.
	Position int
}

// ProcessedField is the result of classifying one field name.
type ProcessedField struct {
	// OriginalName is the field name exactly as it appeared.
	OriginalName string
	// Name is the canonical form of the field name. It differs from
	// OriginalName only for header fields, which are canonicalized to
	// Title-Case-Per-Segment.
	Name string
	// Value is the field's value node, passed through untouched.
	Value *node.Node
	// Family is the matched pattern family.
	Family Family
	// Params are the parameters extracted from the field name, in order.
	Params []Param
	// Valid reports whether the field satisfies its family's grammar.
	// Invalid fields keep their detected family so callers can report
	// what the field looked like it was trying to be.
	Valid bool
	// Complexity is a weighted count of placeholders and segments.
	// Callers can use it to reject overly complex patterns up front.
	Complexity int
}
