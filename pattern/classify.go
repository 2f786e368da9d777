package pattern

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/specerrors"
)

// ExtensionPrefix is the reserved prefix for specification extension fields.
const ExtensionPrefix = "x-"

// Complexity weights. Placeholders cost more than plain segments because
// each one forces parameter matching at lookup time.
const (
	weightSegment     = 1
	weightPlaceholder = 2
)

// runtimeExpressionRe matches "$name" optionally followed by dotted
// sub-names, e.g. "$url", "$request.body".
var runtimeExpressionRe = regexp.MustCompile(`^\$[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// headerCaser canonicalizes one header segment, e.g. "content" to "Content".
var headerCaser = cases.Title(language.English, cases.NoLower)

// Classify determines which pattern family a field name belongs to and
// extracts its parameters. Handlers run in priority order and the first
// match wins: path-template, runtime-expression, specification-extension,
// callback-expression, media-type, then header as the fallback. A field
// that matches a family but breaks its grammar (unbalanced braces, bad
// media-type tokens) keeps the family with Valid set to false; grammar
// problems never surface as errors here.
//
// The value node is carried through untouched so callers can classify and
// rewrite in one sweep over an object's members.
func Classify(field string, value *node.Node) ProcessedField {
	pf := ProcessedField{
		OriginalName: field,
		Name:         field,
		Value:        value,
	}

	switch {
	case isPathTemplate(field):
		classifyPathTemplate(&pf, field)
	case strings.HasPrefix(field, "$"):
		classifyRuntimeExpression(&pf, field)
	case strings.HasPrefix(field, ExtensionPrefix):
		pf.Family = FamilySpecificationExtension
		pf.Valid = len(field) > len(ExtensionPrefix)
		pf.Complexity = weightSegment
	case strings.Contains(field, "{"):
		classifyCallbackExpression(&pf, field)
	case strings.Count(field, "/") == 1:
		classifyMediaType(&pf, field)
	default:
		classifyHeader(&pf, field)
	}
	return pf
}

// Validate classifies a field name and reports an invalid pattern as a
// typed error. Valid fields return nil.
func Validate(field string) error {
	pf := Classify(field, nil)
	if pf.Valid {
		return nil
	}
	return &specerrors.PatternError{
		Field:   field,
		Family:  pf.Family.String(),
		Message: "does not satisfy the family grammar",
	}
}

// isPathTemplate matches on either brace so a slash-rooted field with a
// stray "}" is reported as an invalid template rather than falling
// through to the header family.
func isPathTemplate(field string) bool {
	return strings.HasPrefix(field, "/") && strings.ContainsAny(field, "{}")
}

// classifyPathTemplate validates brace balance and extracts one Param per
// placeholder in order of appearance.
func classifyPathTemplate(pf *ProcessedField, field string) {
	pf.Family = FamilyPathTemplate

	params, ok := extractPlaceholders(field)
	if !ok {
		return
	}
	pf.Valid = true
	pf.Params = params

	segments := 0
	for _, seg := range strings.Split(field, "/") {
		if seg != "" {
			segments++
		}
	}
	pf.Complexity = segments*weightSegment + len(params)*weightPlaceholder
}

// classifyRuntimeExpression splits "$a.b.c" into one Param per dotted
// segment after the dollar sign.
func classifyRuntimeExpression(pf *ProcessedField, field string) {
	pf.Family = FamilyRuntimeExpression
	if !runtimeExpressionRe.MatchString(field) {
		return
	}
	pf.Valid = true

	segments := strings.Split(strings.TrimPrefix(field, "$"), ".")
	pf.Params = make([]Param, 0, len(segments))
	for i, seg := range segments {
		pf.Params = append(pf.Params, Param{Name: seg, Type: inferParamType(seg), Position: i})
	}
	pf.Complexity = len(segments) * weightSegment
}

// classifyCallbackExpression handles brace-templated names that are not
// paths, e.g. "{$request.body#/callbackUrl}".
func classifyCallbackExpression(pf *ProcessedField, field string) {
	pf.Family = FamilyCallbackExpression

	params, ok := extractPlaceholders(field)
	if !ok {
		return
	}
	pf.Valid = true
	pf.Params = params
	pf.Complexity = weightSegment + len(params)*weightPlaceholder
}

// classifyMediaType validates a two-part type/subtype grammar. Both halves
// must be header-style tokens; the subtype (or the whole type) may be the
// "*" wildcard.
func classifyMediaType(pf *ProcessedField, field string) {
	pf.Family = FamilyMediaType

	mainType, subType, _ := strings.Cut(field, "/")
	if !isMediaToken(mainType) || !isMediaToken(subType) {
		return
	}
	pf.Valid = true
	pf.Complexity = weightSegment
	if strings.ContainsRune(field, '*') {
		// Wildcards force range matching downstream.
		pf.Complexity += weightSegment
	}
}

// classifyHeader is the fallback: plain ASCII tokens of letters, digits,
// hyphens, and underscores. The canonical name Title-Cases each
// hyphen-separated segment, so "content-type" becomes "Content-Type".
func classifyHeader(pf *ProcessedField, field string) {
	pf.Family = FamilyHeader
	if field == "" || !isHeaderToken(field) {
		return
	}
	pf.Valid = true
	pf.Name = canonicalHeaderName(field)
	pf.Complexity = weightSegment
}

// extractPlaceholders scans for {name} placeholders, rejecting nested,
// empty, or unbalanced braces. It returns the placeholders in order with
// inferred types, or ok=false when the braces do not validate.
func extractPlaceholders(field string) ([]Param, bool) {
	var params []Param
	var current strings.Builder
	inPlaceholder := false

	for _, r := range field {
		switch r {
		case '{':
			if inPlaceholder {
				return nil, false
			}
			inPlaceholder = true
			current.Reset()
		case '}':
			if !inPlaceholder || current.Len() == 0 {
				return nil, false
			}
			name := current.String()
			params = append(params, Param{Name: name, Type: inferParamType(name), Position: len(params)})
			inPlaceholder = false
		default:
			if inPlaceholder {
				current.WriteRune(r)
			}
		}
	}
	if inPlaceholder {
		return nil, false
	}
	return params, true
}

// inferParamType guesses a parameter's type from its name. Identifier and
// counter style names are assumed numeric; everything else is a string.
func inferParamType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case lower == "id" || strings.HasSuffix(lower, "id"),
		strings.HasSuffix(lower, "index"),
		strings.HasSuffix(lower, "count"),
		strings.HasSuffix(lower, "number"):
		return "integer"
	default:
		return "string"
	}
}

// canonicalHeaderName Title-Cases each hyphen-separated segment.
func canonicalHeaderName(field string) string {
	segments := strings.Split(field, "-")
	for i, seg := range segments {
		segments[i] = headerCaser.String(strings.ToLower(seg))
	}
	return strings.Join(segments, "-")
}

// isHeaderToken reports whether s contains only ASCII letters, digits,
// hyphens, and underscores. This rejects RFC 7230 delimiters, spaces, and
// control characters.
func isHeaderToken(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// isMediaToken reports whether s is a valid media-type token: the "*"
// wildcard, or one or more RFC 7230 tchar characters.
func isMediaToken(s string) bool {
	if s == "*" {
		return true
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isTchar(r) {
			return false
		}
	}
	return true
}

func isTchar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
