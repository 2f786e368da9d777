package transform

import (
	"context"
	"strings"

	"github.com/erraggy/specfold/dispatch"
	"github.com/erraggy/specfold/fold"
	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/pattern"
	"github.com/erraggy/specfold/resolver"
)

// Metadata keys recorded by the standard passes.
const (
	// MetaRefPointer records the pointer a node was resolved from.
	MetaRefPointer = "resolver.pointer"
	// MetaRefSource records where the resolution came from.
	MetaRefSource = "resolver.source"
	// MetaRefFailed marks a reference object whose resolution failed; the
	// reference pass will not retry it on later iterations.
	MetaRefFailed = "resolver.failed"

	// MetaPatternFamily records the matched pattern family of a member key.
	MetaPatternFamily = "pattern.family"
	// MetaPatternValid records whether the key satisfied its family grammar.
	MetaPatternValid = "pattern.valid"
	// MetaPatternComplexity records the pattern complexity score.
	MetaPatternComplexity = "pattern.complexity"
	// MetaPatternParams records extracted parameter names, in order.
	MetaPatternParams = "pattern.params"
	// MetaPatternCanonical records the canonical field name when it differs
	// from the written one.
	MetaPatternCanonical = "pattern.canonicalName"
)

// ClassResolvedReference labels nodes substituted in place of a $ref object.
const ClassResolvedReference = "resolved-reference"

// dispatchPass drives the dispatch table over the whole tree, parent
// first, so type tags assigned to a node's members are visible when the
// traversal reaches them.
type dispatchPass struct {
	table *dispatch.Table
}

func (p dispatchPass) Name() string { return "dispatch" }

func (p dispatchPass) Apply(root *node.Node) (*node.Node, error) {
	return fold.Fold(dispatchFolder{table: p.table}, root)
}

type dispatchFolder struct {
	table *dispatch.Table
}

func (d dispatchFolder) FoldNull(n *node.Node) (*node.Node, error)    { return d.table.Dispatch(n) }
func (d dispatchFolder) FoldBoolean(n *node.Node) (*node.Node, error) { return d.table.Dispatch(n) }
func (d dispatchFolder) FoldNumber(n *node.Node) (*node.Node, error)  { return d.table.Dispatch(n) }
func (d dispatchFolder) FoldString(n *node.Node) (*node.Node, error)  { return d.table.Dispatch(n) }

func (d dispatchFolder) FoldArray(n *node.Node) (*node.Node, error) {
	out, err := d.table.Dispatch(n)
	if err != nil {
		return nil, err
	}
	return fold.Array(d, out)
}

func (d dispatchFolder) FoldObject(n *node.Node) (*node.Node, error) {
	out, err := d.table.Dispatch(n)
	if err != nil {
		return nil, err
	}
	return fold.Object(d, out)
}

// referencePass substitutes $ref objects with their resolved targets. A
// substitution is shallow: content brought in by resolution is not chased
// for further references within the same cycle, the next scheduler
// iteration picks those up. Failed resolutions keep the reference object
// in the tree with a diagnostic; nothing is dropped.
type referencePass struct {
	ctx    context.Context
	res    *resolver.Resolver
	logger resolver.Logger
}

func (p referencePass) Name() string { return "resolve-references" }

func (p referencePass) Apply(root *node.Node) (*node.Node, error) {
	return fold.Fold(referenceFolder{ctx: p.ctx, res: p.res, doc: root, logger: p.logger}, root)
}

type referenceFolder struct {
	fold.Identity
	ctx    context.Context
	res    *resolver.Resolver
	doc    *node.Node
	logger resolver.Logger
}

func (f referenceFolder) FoldArray(n *node.Node) (*node.Node, error) {
	return fold.Array(f, n)
}

func (f referenceFolder) FoldObject(n *node.Node) (*node.Node, error) {
	refVal, ok := n.Get("$ref")
	if !ok || refVal.Kind != node.KindString {
		return fold.Object(f, n)
	}
	if _, failed := n.Meta(MetaRefFailed); failed {
		return n, nil
	}

	ref, err := f.res.Resolve(f.ctx, f.doc, refVal.Str)
	if err != nil {
		f.logger.Warn("reference resolution failed", "ref", refVal.Str, "error", err)
		n.SetMeta(MetaRefFailed, true)
		n.AddDiagnostic(node.Diagnostic{
			Message:  "unresolved reference " + refVal.Str + ": " + err.Error(),
			Severity: node.SeverityError,
		})
		return n, nil
	}

	out := ref.Node
	out.SetMeta(MetaRefPointer, refVal.Str)
	out.SetMeta(MetaRefSource, string(ref.Source))
	out.AddClass(ClassResolvedReference)
	return out, nil
}

// patternPass classifies patterned member keys: path templates, runtime
// expressions, extensions, callback expressions, and media types. Plain
// header-style keys are left unannotated; callers that need header
// canonicalization classify those fields directly.
type patternPass struct{}

func (patternPass) Name() string { return "classify-patterns" }

func (patternPass) Apply(root *node.Node) (*node.Node, error) {
	return fold.Fold(patternFolder{}, root)
}

type patternFolder struct {
	fold.Identity
}

func (f patternFolder) FoldArray(n *node.Node) (*node.Node, error) {
	return fold.Array(f, n)
}

func (f patternFolder) FoldObject(n *node.Node) (*node.Node, error) {
	for i := range n.Members {
		m := &n.Members[i]
		key := m.Key.Str
		if !patterned(key) {
			continue
		}
		if _, seen := m.Value.Meta(MetaPatternFamily); seen {
			continue
		}

		pf := pattern.Classify(key, m.Value)
		m.Value.SetMeta(MetaPatternFamily, pf.Family.String())
		m.Value.SetMeta(MetaPatternValid, pf.Valid)
		m.Value.SetMeta(MetaPatternComplexity, pf.Complexity)
		if len(pf.Params) > 0 {
			names := make([]string, len(pf.Params))
			for j, p := range pf.Params {
				names[j] = p.Name
			}
			m.Value.SetMeta(MetaPatternParams, names)
		}
		if pf.Name != pf.OriginalName {
			m.Value.SetMeta(MetaPatternCanonical, pf.Name)
		}
		m.Value.AddClass(pf.Family.String())
		if !pf.Valid {
			m.Value.AddDiagnostic(node.Diagnostic{
				Message:  "field " + key + " does not satisfy the " + pf.Family.String() + " grammar",
				Severity: node.SeverityWarning,
			})
		}
	}
	return fold.Object(f, n)
}

// patterned reports whether a key triggers one of the non-fallback
// pattern families. The structural "$ref" key is the reference pass's
// business, not a runtime expression.
func patterned(key string) bool {
	if key == "$ref" {
		return false
	}
	switch {
	case strings.HasPrefix(key, "/"),
		strings.HasPrefix(key, "$"),
		strings.HasPrefix(key, "{"),
		strings.HasPrefix(key, pattern.ExtensionPrefix),
		strings.Count(key, "/") == 1 && key != "":
		return true
	}
	return false
}
