package dispatch

import (
	"fmt"
	"strings"

	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/specerrors"
)

// ExtensionPrefix is the reserved prefix marking specification-extension
// field names.
const ExtensionPrefix = "x-"

// valueEntryName is the universal fallback entry consulted for unknown
// type tags. Registering an entry under this name overrides the built-in
// identity behavior.
const valueEntryName = "value"

// Metadata keys recorded on dispatched nodes.
const (
	// MetaFixedField records the fixed-field name a member value matched.
	MetaFixedField = "dispatch.fixedField"
	// MetaExtension marks a member value routed as a specification extension.
	MetaExtension = "dispatch.extension"
	// MetaFallback marks a member value routed through the fallback handler.
	MetaFallback = "dispatch.fallback"
	// MetaPath records the spec-path breadcrumb at dispatch time.
	MetaPath = "dispatch.path"
)

// Classification labels attached by fixed-field routing.
const (
	ClassFixedField = "fixed-field"
	ClassExtension  = "specification-extension"
	ClassFallback   = "fallback"
)

// FixedFields associates the statically known field names of one node type
// with the entry that rewrites each field's value.
type FixedFields map[string]*Entry

// Table is a specification dispatch table: type tag → entry, plus optional
// fixed-field maps per type.
type Table struct {
	entries map[string]*Entry
	fields  map[string]FixedFields
}

// NewTable returns an empty dispatch table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]*Entry),
		fields:  make(map[string]FixedFields),
	}
}

// Register adds an entry for a type tag, replacing any previous entry.
func (t *Table) Register(typeTag string, e *Entry) {
	t.entries[typeTag] = e
}

// RegisterFunc adds a direct rewrite function for a type tag.
func (t *Table) RegisterFunc(typeTag string, fn RewriteFunc) {
	t.Register(typeTag, Func(fn))
}

// RegisterFields declares the fixed fields of a type. Members of a
// dispatched object of this type are routed individually; see Dispatch.
func (t *Table) RegisterFields(typeTag string, ff FixedFields) {
	t.fields[typeTag] = ff
}

// Fields returns the fixed-field map declared for a type, if any.
func (t *Table) Fields(typeTag string) (FixedFields, bool) {
	ff, ok := t.fields[typeTag]
	return ff, ok
}

// Lookup returns the entry for a type tag with indirection resolved.
// Unknown tags fall back to the universal "value" entry (identity unless
// overridden). An indirection that cannot be resolved, or that lands on
// another indirection, is a configuration error.
func (t *Table) Lookup(typeTag string) (*Entry, error) {
	e, ok := t.entries[typeTag]
	if !ok {
		if v, ok := t.entries[valueEntryName]; ok {
			e = v
		} else {
			return &Entry{}, nil
		}
	}
	return t.resolveEntry(e, typeTag)
}

// resolveEntry follows at most one level of indirection. A ref that does
// not resolve, or that lands on another ref, is a configuration error;
// deeper chains must be modeled as directly nested entries.
func (t *Table) resolveEntry(e *Entry, owner string) (*Entry, error) {
	if !e.IsRef() {
		return e, nil
	}
	target, ok := t.lookupPath(e.ref)
	if !ok {
		return nil, &specerrors.ConfigError{
			Option:  "dispatch",
			Message: fmt.Sprintf("indirection %q for %q does not resolve", e.ref, owner),
		}
	}
	if target.IsRef() {
		return nil, &specerrors.ConfigError{
			Option:  "dispatch",
			Message: fmt.Sprintf("chained indirection %q for %q", e.ref, owner),
		}
	}
	return target, nil
}

// lookupPath walks a slash-separated indirection path through nested
// sub-tables.
func (t *Table) lookupPath(path string) (*Entry, bool) {
	segments := strings.Split(path, "/")
	current := t
	for i, seg := range segments {
		e, ok := current.entries[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return e, true
		}
		if e.table == nil {
			return nil, false
		}
		current = e.table
	}
	return nil, false
}

// Dispatch rewrites a node according to its type tag: the matching entry
// runs first, then, when the (possibly rewritten) node is an object whose
// type declares fixed fields, each member is routed individually.
//
// Dispatch owns the node it is given and may annotate it in place; callers
// pass working copies (the pass scheduler's working tree, or a fold
// traversal's output). Re-dispatching an already-typed node is idempotent:
// it may add metadata but does not change type tags or structure.
func (t *Table) Dispatch(n *node.Node) (*node.Node, error) {
	return t.dispatch(&Context{Table: t}, n)
}

// DispatchPath is Dispatch with an explicit spec-path breadcrumb for the
// root of the dispatched subtree.
func (t *Table) DispatchPath(n *node.Node, path string) (*node.Node, error) {
	return t.dispatch(&Context{Table: t, Path: path}, n)
}

func (t *Table) dispatch(c *Context, n *node.Node) (*node.Node, error) {
	entry, err := t.Lookup(n.TypeTag)
	if err != nil {
		return nil, err
	}
	out, err := entry.apply(c, n)
	if err != nil {
		return nil, err
	}

	if ff, ok := t.fields[out.TypeTag]; ok && out.Kind == node.KindObject {
		if err := t.routeFields(c, out, ff); err != nil {
			return nil, err
		}
	}

	if c.Path != "" {
		out.SetMeta(MetaPath, c.Path)
	}
	return out, nil
}

// routeFields dispatches each member of a typed object: known fields to
// their declared entry, extension-prefixed fields to the extension
// handler, everything else to the fallback handler. All three routes
// preserve the member; they differ only in tagging and type rewriting.
// A field entry that fails records a diagnostic on the member value and
// routing continues; per-field issues never abort the dispatch.
func (t *Table) routeFields(c *Context, n *node.Node, ff FixedFields) error {
	for i := range n.Members {
		m := &n.Members[i]
		name := m.Key.Str
		fc := c.child(name)

		entry, known := ff[name]
		switch {
		case known:
			resolved, err := t.resolveEntry(entry, name)
			if err != nil {
				return err
			}
			out, err := resolved.apply(fc, m.Value)
			if err != nil {
				m.Value.AddDiagnostic(node.Diagnostic{
					Path:     fc.Path,
					Message:  "fixed field rewrite failed: " + err.Error(),
					Severity: node.SeverityError,
				})
			} else if out != nil {
				m.Value = out
			}
			m.Value.SetMeta(MetaFixedField, name)
			m.Value.AddClass(ClassFixedField)

		case strings.HasPrefix(name, ExtensionPrefix):
			m.Value.SetMeta(MetaExtension, true)
			m.Value.AddClass(ClassExtension)

		default:
			m.Value.SetMeta(MetaFallback, true)
			m.Value.AddClass(ClassFallback)
		}
	}
	return nil
}
