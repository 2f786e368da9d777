package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/specerrors"
)

// ResolvePointer walks a JSON-Pointer fragment against a document tree.
// Pointers are in the format: #/path/to/component. Per RFC 6901, segments
// are slash-separated with ~1 unescaping to / and ~0 to ~; numeric
// segments index arrays; other segments index object keys by exact match.
// A missing key or out-of-range index is a resolution error, not a silent
// null.
func ResolvePointer(doc *node.Node, pointer string) (*node.Node, error) {
	ref := strings.TrimPrefix(pointer, "#")
	if ref == "" || ref == "/" {
		return doc, nil
	}

	parts := strings.Split(strings.TrimPrefix(ref, "/"), "/")
	current := doc
	for i, part := range parts {
		part = unescapeJSONPointer(part)

		switch current.Kind {
		case node.KindObject:
			next, ok := current.Get(part)
			if !ok {
				return nil, &specerrors.ResolveError{
					Pointer:  pointer,
					Source:   string(SourceInline),
					NotFound: true,
					Message:  fmt.Sprintf("missing key %q at #/%s", part, strings.Join(parts[:i+1], "/")),
				}
			}
			current = next

		case node.KindArray:
			index, err := strconv.Atoi(part)
			if err != nil {
				return nil, &specerrors.ResolveError{
					Pointer: pointer,
					Source:  string(SourceInline),
					Message: fmt.Sprintf("invalid array index %q at #/%s (must be a non-negative integer)", part, strings.Join(parts[:i+1], "/")),
				}
			}
			if index < 0 || index >= len(current.Items) {
				return nil, &specerrors.ResolveError{
					Pointer:  pointer,
					Source:   string(SourceInline),
					NotFound: true,
					Message:  fmt.Sprintf("array index %d out of bounds (length %d) at #/%s", index, len(current.Items), strings.Join(parts[:i+1], "/")),
				}
			}
			current = current.Items[index]

		default:
			return nil, &specerrors.ResolveError{
				Pointer: pointer,
				Source:  string(SourceInline),
				Message: fmt.Sprintf("cannot traverse into %s node at #/%s", current.Kind, strings.Join(parts[:i], "/")),
			}
		}
	}

	return current, nil
}

// unescapeJSONPointer unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}
