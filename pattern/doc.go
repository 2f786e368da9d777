// Package pattern classifies structurally significant field names.
//
// Specification documents use field names as data: a path string doubles
// as an object key, a media type selects a content branch, a header name
// keys an encoding. Classify runs a priority-ordered handler chain over a
// field name and reports the first family that claims it:
//
//  1. path-template: starts with "/" and contains a {placeholder}
//  2. runtime-expression: "$name" with optional dotted sub-names
//  3. specification-extension: the reserved "x-" prefix
//  4. callback-expression: brace placeholders without a leading "/"
//  5. media-type: a "type/subtype" token pair, wildcards allowed
//  6. header: plain ASCII token, the fallback
//
// Each handler validates its own grammar and extracts ordered parameters
// where the family has any (brace placeholders for paths and callbacks,
// dotted segments for runtime expressions). Grammar violations are
// reported through the ProcessedField's Valid flag rather than errors, so
// a sweep over an object's members never aborts halfway. Every match also
// carries a small complexity score callers can use to reject pathological
// field names before further processing.
package pattern
