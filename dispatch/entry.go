package dispatch

import (
	"github.com/erraggy/specfold/node"
)

// RewriteFunc rewrites a node during dispatch. It may return the input
// unchanged ("no match"), a replacement node, or nil, which is treated the
// same as returning the input. Dispatch owns the node it is given, so
// in-place annotation is allowed.
type RewriteFunc func(c *Context, n *node.Node) (*node.Node, error)

// Context carries dispatch state into rewrite functions.
type Context struct {
	// Table is the table driving this dispatch.
	Table *Table
	// Path is the spec-path breadcrumb to the node being rewritten,
	// e.g. "document.paths./pets".
	Path string
}

// child extends the breadcrumb with a field name.
func (c *Context) child(name string) *Context {
	path := name
	if c.Path != "" {
		path = c.Path + "." + name
	}
	return &Context{Table: c.Table, Path: path}
}

// Entry is one dispatch table entry: exactly one of a direct function, a
// named indirection, or a nested sub-table.
type Entry struct {
	fn    RewriteFunc
	ref   string
	table *Table
}

// Func builds a direct rewrite entry.
func Func(fn RewriteFunc) *Entry {
	return &Entry{fn: fn}
}

// Ref builds a named indirection entry. The path is resolved against the
// table at lookup time; slash-separated segments descend into nested
// sub-tables ("components/schema").
func Ref(path string) *Entry {
	return &Entry{ref: path}
}

// Nested builds an entry holding a sub-table. Dispatching a node through a
// nested entry dispatches it against the sub-table.
func Nested(t *Table) *Entry {
	return &Entry{table: t}
}

// IsRef reports whether the entry is a named indirection.
func (e *Entry) IsRef() bool { return e.ref != "" }

// apply runs the entry against a node. The entry must already be
// indirection-free (Lookup resolves refs before returning).
func (e *Entry) apply(c *Context, n *node.Node) (*node.Node, error) {
	switch {
	case e.fn != nil:
		out, err := e.fn(c, n)
		if err != nil {
			return nil, err
		}
		if out == nil {
			return n, nil
		}
		return out, nil
	case e.table != nil:
		return e.table.dispatch(c, n)
	default:
		return n, nil
	}
}
